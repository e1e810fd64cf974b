package core

// Cue is a named sound event emitted by the simulation at the moment the
// corresponding event happens. The platform forwards cues to an audio sink;
// nothing is returned to the game.
type Cue int

const (
	CueHit Cue = iota
	CueThrow
	CueSwing
	CueSplash
	CuePlayerHit
	CueBossWarning
	CueBossDefeat
	CuePowerUp
	CueVictory
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueThrow:
		return "throw"
	case CueSwing:
		return "swing"
	case CueSplash:
		return "splash"
	case CuePlayerHit:
		return "player-hit"
	case CueBossWarning:
		return "boss-warning"
	case CueBossDefeat:
		return "boss-defeat"
	case CuePowerUp:
		return "power-up-collect"
	case CueVictory:
		return "victory-jingle"
	default:
		return "unknown"
	}
}
