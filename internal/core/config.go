package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW     int    // Screen width in characters
	ScreenH     int    // Screen height in characters
	TickRate    int    // Simulation ticks per second (default 60)
	Seed        int64  // RNG seed for deterministic gameplay
	HighScore   int    // Best score loaded from persistence (0 if unknown)
	ControlMode string // Saved control-mode preference ("" = game default)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int    // Current score
	Level         int    // Current level index (0-based)
	GameOver      bool   // Whether the run has ended (defeat or victory)
	Paused        bool   // Whether the game is paused
	LevelComplete bool   // True while the level-complete screen is shown
	ControlMode   string // Active control mode, persisted by the platform
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue // Sound cues fired during this tick, in emission order
}
