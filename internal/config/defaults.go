package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/sushi.yaml
var defaultSushiYAML []byte

// DefaultSushiConfig returns the hard-coded Sushi Bros configuration.
// It mirrors defaults/sushi.yaml and is used when the embedded file cannot be parsed.
func DefaultSushiConfig() SushiConfig {
	return SushiConfig{
		Viewport: ViewportConfig{
			Width:         400,
			Height:        700,
			ScrollTrigger: 0.6,
		},
		Player: PlayerConfig{
			Radius:        14,
			Speed:         3.0,
			WaterSpeed:    1.8,
			TurnRate:      0.08,
			StartLives:    3,
			MaxLives:      5,
			InvulnFrames:  120,
			RespawnFrames: 90,
		},
		Sushi: SushiShotConfig{
			Speed:        7,
			Life:         60,
			Radius:       6,
			MaxInFlight:  10,
			TripleSpread: 0.2,
			Damage:       1,
		},
		Pole: PoleConfig{
			Frames: 20,
			Sweep:  1.2 * math.Pi,
			Reach:  48,
			Damage: 2,
		},
		PowerUps: PowerUpConfig{
			DropChance:   0.12,
			GroundLife:   600,
			SpeedFrames:  600,
			SpeedFactor:  1.5,
			TripleFrames: 600,
			ShieldFrames: 300,
			Weights: PowerUpWeights{
				Speed:  3,
				Triple: 3,
				Shield: 2,
				Life:   1,
			},
		},
		Spawn: SpawnConfig{
			Lookahead:      200,
			CullMargin:     60,
			TreeCullMargin: 300,
			FirstSpawnAt:   500,
		},
		Boss: BossConfig{
			WarningFrames:  120,
			ClearingFrames: 60,
			ClearEvery:     5,
			DefeatFrames:   90,
			NetDwellFrames: 30,
			ShieldFrames:   60,
			BonusPerLevel:  5000,
		},
		Scoring: ScoringConfig{
			HitsPerStep:   3,
			MaxMultiplier: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				DriftCap:         1.0,
				DriftPerDistance: 0.0004,
				SpacingReduction: 0.25,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSushiYAML
}
