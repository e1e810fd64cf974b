package sushi

import "github.com/vovakirdan/sushi-bros/internal/core"

// PowerUpKind identifies a collectible effect.
type PowerUpKind int

const (
	PowerSpeed PowerUpKind = iota
	PowerTriple
	PowerShield
	PowerLife
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerSpeed:
		return "speed"
	case PowerTriple:
		return "triple"
	case PowerShield:
		return "shield"
	case PowerLife:
		return "life"
	default:
		return "unknown"
	}
}

// PowerUp is a dropped collectible anchored in world space.
type PowerUp struct {
	Kind   PowerUpKind
	X      float64
	WorldY float64
	Life   int // Frames until it expires uncollected
}

const powerUpRadius = 10

// Effects holds the remaining frames of each timed power-up.
type Effects struct {
	Speed  int
	Triple int
	Shield int
}

func (e *Effects) tick() {
	if e.Speed > 0 {
		e.Speed--
	}
	if e.Triple > 0 {
		e.Triple--
	}
	if e.Shield > 0 {
		e.Shield--
	}
}

// maybeDrop rolls the drop chance and places a power-up at the given spot.
func (w *World) maybeDrop(x, worldY float64) {
	pc := w.cfg.PowerUps
	if w.rng.Float64() >= pc.DropChance {
		return
	}
	w.PowerUps = append(w.PowerUps, &PowerUp{
		Kind:   w.pickPowerUp(),
		X:      x,
		WorldY: worldY,
		Life:   pc.GroundLife,
	})
}

// pickPowerUp draws a kind from the configured weights.
func (w *World) pickPowerUp() PowerUpKind {
	wt := w.cfg.PowerUps.Weights
	kinds := []PowerUpKind{PowerSpeed, PowerTriple, PowerShield, PowerLife}
	weights := []int{wt.Speed, wt.Triple, wt.Shield, wt.Life}

	total := 0
	for _, v := range weights {
		total += max(v, 0)
	}
	if total == 0 {
		return PowerSpeed
	}
	roll := w.rng.Intn(total)
	for i, v := range weights {
		roll -= max(v, 0)
		if roll < 0 {
			return kinds[i]
		}
	}
	return PowerLife
}

// collect applies a power-up to the run.
func (w *World) collect(p *PowerUp) {
	pc := w.cfg.PowerUps
	switch p.Kind {
	case PowerSpeed:
		w.Effects.Speed = pc.SpeedFrames
	case PowerTriple:
		w.Effects.Triple = pc.TripleFrames
	case PowerShield:
		w.Effects.Shield = pc.ShieldFrames
	case PowerLife:
		w.run.Lives = min(w.run.Lives+1, w.cfg.Player.MaxLives)
	}
	w.emit(core.CuePowerUp)
	w.burst(p.X, w.Camera.WorldToScreen(p.WorldY), 8, core.ColorBrightYellow)
}
