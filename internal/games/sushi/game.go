// Package sushi implements Sushi Bros, a top-down scrolling arcade game.
// A sushi chef advances up a beach, throwing sushi and swinging a pole at
// crabs, seagulls and fishermen, and faces a boss at the end of each level.
//
// The package is a pure simulation: the platform calls Step once per tick
// with an input snapshot and renders from a read-only Snapshot.
package sushi

import (
	"math/rand"

	"github.com/vovakirdan/sushi-bros/internal/config"
	"github.com/vovakirdan/sushi-bros/internal/core"
	"github.com/vovakirdan/sushi-bros/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "sushi"

// Orchestrator timers, in frames.
const (
	IntroFrames    = 120
	CompleteFrames = 180
)

// State is the top-level run state.
type State int

const (
	StateMenu State = iota
	StateLevelIntro
	StatePlaying
	StateLevelComplete
	StateVictory
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateLevelIntro:
		return "levelIntro"
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "levelComplete"
	case StateVictory:
		return "victory"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Package-level settings applied on Reset, set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
)

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the level a new run starts at (0-based).
func SetStartLevel(level int) {
	startLevel = level
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game is the run/level orchestrator.
type Game struct {
	cfg      config.SushiConfig
	override *config.SushiConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	diff     *config.DifficultyManager

	state  State
	timer  int
	paused bool
	run    Run
	level  int
	first  int // Level a new run starts at
	world  *World
	mode   ControlMode
	tick   int
	cues   []core.Cue
}

// New creates a game that loads its tuning from the config search chain on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed tuning config.
func NewWithConfig(cfg config.SushiConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sushi Bros"
}

// Reset loads configuration and returns to the menu.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.LoadSushi(configPath)
		if err != nil {
			cfg = config.DefaultSushiConfig()
		}
		config.ApplySushiPreset(&cfg, difficultyPreset)
		g.cfg = cfg
		g.first = startLevel
	}
	g.first = min(max(g.first, 0), len(Levels)-1)

	g.rng = rand.New(rand.NewSource(rc.Seed)) //#nosec G404 -- deterministic game RNG
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.mode = ParseControlMode(rc.ControlMode)
	g.run = Run{HighScore: max(rc.HighScore, 0)}
	g.state = StateMenu
	g.timer = 0
	g.paused = false
	g.level = g.first
	g.world = nil
	g.tick = 0
	g.cues = nil
}

// Step advances the orchestrator by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]

	if in.Has(core.ActionToggleControl) && (g.state == StateMenu || g.state == StatePlaying) {
		g.mode = g.mode.Toggle()
		if g.world != nil {
			g.world.mode = g.mode
		}
	}

	switch g.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionThrow) {
			g.startRun()
		}

	case StateLevelIntro:
		g.timer--
		if g.timer <= 0 {
			g.state = StatePlaying
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		g.tick++
		g.world.step(in)
		g.cues = append(g.cues, g.world.takeCues()...)

		switch {
		case g.run.Lives <= 0:
			g.state = StateGameOver
		case g.world.resolved && g.level+1 < len(Levels):
			g.state = StateLevelComplete
			g.timer = CompleteFrames
		case g.world.resolved:
			g.state = StateVictory
			g.cues = append(g.cues, core.CueVictory)
		}

	case StateLevelComplete:
		g.world.updateParticles()
		g.timer--
		if g.timer <= 0 {
			g.startLevel(g.level + 1)
		}

	case StateVictory, StateGameOver:
		if g.world != nil {
			g.world.updateParticles()
		}
		if in.Has(core.ActionRestart) {
			g.startRun()
		} else if in.Has(core.ActionBack) {
			g.state = StateMenu
			g.world = nil
		}
	}

	if g.run.Score > g.run.HighScore {
		g.run.HighScore = g.run.Score
	}

	cues := make([]core.Cue, len(g.cues))
	copy(cues, g.cues)
	return core.StepResult{State: g.State(), Cues: cues}
}

// startRun resets score and lives and enters the first level.
func (g *Game) startRun() {
	g.run = Run{
		Lives:     g.cfg.Player.StartLives,
		HighScore: g.run.HighScore,
	}
	g.paused = false
	g.startLevel(g.first)
}

// startLevel builds a fresh world for the level and shows its intro.
func (g *Game) startLevel(level int) {
	g.level = level
	g.world = newWorld(g.cfg, level, &g.run, g.rng, g.diff, g.mode)
	g.state = StateLevelIntro
	g.timer = IntroFrames
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.run.Score,
		Level:         g.level,
		GameOver:      g.state == StateGameOver || g.state == StateVictory,
		Paused:        g.paused,
		LevelComplete: g.state == StateLevelComplete,
		ControlMode:   string(g.mode),
	}
}

// RunState returns the orchestrator state.
func (g *Game) RunState() State {
	return g.state
}

// HighScore returns the best score known to this session.
func (g *Game) HighScore() int {
	return g.run.HighScore
}

// Render draws the current snapshot into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(g.Snapshot(), dst)
}
