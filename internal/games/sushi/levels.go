package sushi

import "github.com/vovakirdan/sushi-bros/internal/core"

// KindWeights are relative enemy-kind draw weights.
type KindWeights struct {
	Crab      float64
	Seagull   float64
	Fisherman float64
}

// lerp blends two weight sets by t in [0, 1].
func (w KindWeights) lerp(o KindWeights, t float64) KindWeights {
	return KindWeights{
		Crab:      core.Lerp(w.Crab, o.Crab, t),
		Seagull:   core.Lerp(w.Seagull, o.Seagull, t),
		Fisherman: core.Lerp(w.Fisherman, o.Fisherman, t),
	}
}

// LevelConfig is the immutable description of one level.
type LevelConfig struct {
	Name           string
	Subtitle       string
	TargetDistance int // Distance that triggers the boss encounter
	Terrain        TerrainFunc
	Background     core.Color

	// Enemy kind weights at difficulty 0 and 1; the draw interpolates between them.
	EarlyWeights KindWeights
	LateWeights  KindWeights

	SpawnMin, SpawnMax float64 // World units between enemy batches
	EnemyHPMultiplier  float64
	ShootMin, ShootMax int     // Fisherman attack cooldown range, frames
	ShotSpeed          float64 // Fisherman projectile speed, px per frame

	Trees            bool
	TreeMin, TreeMax float64 // World units between tree clusters
	Boss             BossKind
}

// Levels is the campaign, indexed by level number.
var Levels = []LevelConfig{
	{
		Name:              "Sushi Beach",
		Subtitle:          "The tide is rising and the crabs are hungry",
		TargetDistance:    2000,
		Terrain:           beachTerrain,
		Background:        core.ColorSand,
		EarlyWeights:      KindWeights{Crab: 6, Seagull: 4, Fisherman: 0},
		LateWeights:       KindWeights{Crab: 4, Seagull: 4, Fisherman: 2},
		SpawnMin:          160,
		SpawnMax:          260,
		EnemyHPMultiplier: 1.0,
		ShootMin:          120,
		ShootMax:          200,
		ShotSpeed:         2.5,
		Boss:              BossOctopus,
	},
	{
		Name:              "Crab Cove",
		Subtitle:          "Sideways is the only way",
		TargetDistance:    3000,
		Terrain:           coveTerrain,
		Background:        core.ColorCyan,
		EarlyWeights:      KindWeights{Crab: 7, Seagull: 3, Fisherman: 1},
		LateWeights:       KindWeights{Crab: 5, Seagull: 3, Fisherman: 3},
		SpawnMin:          130,
		SpawnMax:          220,
		EnemyHPMultiplier: 1.5,
		ShootMin:          100,
		ShootMax:          170,
		ShotSpeed:         3.0,
		Boss:              BossCrabKing,
	},
	{
		Name:              "Jungle River",
		Subtitle:          "Mind the trees, mind the hooks",
		TargetDistance:    4000,
		Terrain:           jungleTerrain,
		Background:        core.ColorGreen,
		EarlyWeights:      KindWeights{Crab: 3, Seagull: 4, Fisherman: 3},
		LateWeights:       KindWeights{Crab: 2, Seagull: 4, Fisherman: 5},
		SpawnMin:          110,
		SpawnMax:          190,
		EnemyHPMultiplier: 2.0,
		ShootMin:          80,
		ShootMax:          140,
		ShotSpeed:         3.5,
		Trees:             true,
		TreeMin:           90,
		TreeMax:           170,
		Boss:              BossFisherman,
	},
}

// EnemyKind identifies a regular enemy type.
type EnemyKind int

const (
	EnemyCrab EnemyKind = iota
	EnemySeagull
	EnemyFisherman
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyCrab:
		return "crab"
	case EnemySeagull:
		return "seagull"
	case EnemyFisherman:
		return "fisherman"
	default:
		return "unknown"
	}
}

// enemyStats holds the base hit points, radius and kill score of a kind.
type enemyStats struct {
	HP     int
	Radius float64
	Points int
}

var enemyTable = map[EnemyKind]enemyStats{
	EnemyCrab:      {HP: 2, Radius: 16, Points: 150},
	EnemySeagull:   {HP: 1, Radius: 13, Points: 100},
	EnemyFisherman: {HP: 3, Radius: 15, Points: 250},
}
