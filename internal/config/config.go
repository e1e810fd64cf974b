// Package config provides YAML/TOML-based tuning configuration and
// difficulty management for Sushi Bros.
package config

// SushiConfig contains all tunable parameters of the simulation.
// Units are logical viewport pixels and frames (60 per second).
type SushiConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport" toml:"viewport"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Sushi      SushiShotConfig  `yaml:"sushi" toml:"sushi"`
	Pole       PoleConfig       `yaml:"pole" toml:"pole"`
	PowerUps   PowerUpConfig    `yaml:"powerups" toml:"powerups"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Boss       BossConfig       `yaml:"boss" toml:"boss"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ViewportConfig defines the logical canvas the simulation runs in.
type ViewportConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	ScrollTrigger float64 `yaml:"scroll_trigger" toml:"scroll_trigger"` // Fraction of height
}

// PlayerConfig defines movement and survival parameters.
type PlayerConfig struct {
	Radius        float64 `yaml:"radius" toml:"radius"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	WaterSpeed    float64 `yaml:"water_speed" toml:"water_speed"`
	TurnRate      float64 `yaml:"turn_rate" toml:"turn_rate"` // Spin mode, radians per frame
	StartLives    int     `yaml:"start_lives" toml:"start_lives"`
	MaxLives      int     `yaml:"max_lives" toml:"max_lives"`
	InvulnFrames  int     `yaml:"invuln_frames" toml:"invuln_frames"`
	RespawnFrames int     `yaml:"respawn_frames" toml:"respawn_frames"`
}

// SushiShotConfig defines the thrown sushi projectile.
type SushiShotConfig struct {
	Speed        float64 `yaml:"speed" toml:"speed"`
	Life         int     `yaml:"life" toml:"life"`
	Radius       float64 `yaml:"radius" toml:"radius"`
	MaxInFlight  int     `yaml:"max_in_flight" toml:"max_in_flight"`
	TripleSpread float64 `yaml:"triple_spread" toml:"triple_spread"` // Radians
	Damage       int     `yaml:"damage" toml:"damage"`
}

// PoleConfig defines the melee pole swing.
type PoleConfig struct {
	Frames int     `yaml:"frames" toml:"frames"`
	Sweep  float64 `yaml:"sweep" toml:"sweep"` // Radians swept over the whole swing
	Reach  float64 `yaml:"reach" toml:"reach"`
	Damage int     `yaml:"damage" toml:"damage"`
}

// PowerUpConfig defines drop rates and effect durations.
type PowerUpConfig struct {
	DropChance   float64        `yaml:"drop_chance" toml:"drop_chance"`
	GroundLife   int            `yaml:"ground_life" toml:"ground_life"`
	SpeedFrames  int            `yaml:"speed_frames" toml:"speed_frames"`
	SpeedFactor  float64        `yaml:"speed_factor" toml:"speed_factor"`
	TripleFrames int            `yaml:"triple_frames" toml:"triple_frames"`
	ShieldFrames int            `yaml:"shield_frames" toml:"shield_frames"`
	Weights      PowerUpWeights `yaml:"weights" toml:"weights"`
}

// PowerUpWeights are relative drop weights per power-up kind.
type PowerUpWeights struct {
	Speed  int `yaml:"speed" toml:"speed"`
	Triple int `yaml:"triple" toml:"triple"`
	Shield int `yaml:"shield" toml:"shield"`
	Life   int `yaml:"life" toml:"life"`
}

// SpawnConfig defines how far ahead entities appear and when they are culled.
type SpawnConfig struct {
	Lookahead      float64 `yaml:"lookahead" toml:"lookahead"`
	CullMargin     float64 `yaml:"cull_margin" toml:"cull_margin"`
	TreeCullMargin float64 `yaml:"tree_cull_margin" toml:"tree_cull_margin"`
	FirstSpawnAt   float64 `yaml:"first_spawn_at" toml:"first_spawn_at"`
}

// BossConfig defines the boss encounter timers.
type BossConfig struct {
	WarningFrames  int `yaml:"warning_frames" toml:"warning_frames"`
	ClearingFrames int `yaml:"clearing_frames" toml:"clearing_frames"`
	ClearEvery     int `yaml:"clear_every" toml:"clear_every"`
	DefeatFrames   int `yaml:"defeat_frames" toml:"defeat_frames"`
	NetDwellFrames int `yaml:"net_dwell_frames" toml:"net_dwell_frames"`
	ShieldFrames   int `yaml:"shield_frames" toml:"shield_frames"`
	BonusPerLevel  int `yaml:"bonus_per_level" toml:"bonus_per_level"`
}

// ScoringConfig defines the streak multiplier law.
type ScoringConfig struct {
	HitsPerStep   int `yaml:"hits_per_step" toml:"hits_per_step"`
	MaxMultiplier int `yaml:"max_multiplier" toml:"max_multiplier"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases with progress.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "distance" or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // World distance at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DriftCap         float64 `yaml:"drift_cap" toml:"drift_cap"`                 // Max enemy sway factor
	DriftPerDistance float64 `yaml:"drift_per_distance" toml:"drift_per_distance"` // Sway gained per world unit
	SpacingReduction float64 `yaml:"spacing_reduction" toml:"spacing_reduction"` // Fraction of spawn interval removed at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
