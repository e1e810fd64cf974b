package config

import "math"

// DifficultyManager maps forward progress to a normalized difficulty level
// and derives spawn parameters from it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for the given
// world distance. The ramp starts at the initial level and reaches 1.0 at MaxAt.
func (d *DifficultyManager) Level(distance float64) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "distance" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(distance/maxAt, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Drift returns the lateral sway factor for an enemy anchored at worldY.
// Early enemies are nearly static; the factor grows linearly and is capped.
func (d *DifficultyManager) Drift(worldY float64) float64 {
	s := d.cfg.Scaling
	if worldY < 0 {
		worldY = 0
	}
	return math.Min(worldY*s.DriftPerDistance, s.DriftCap)
}

// Spacing shortens a spawn interval as difficulty rises.
func (d *DifficultyManager) Spacing(base, distance float64) float64 {
	level := d.Level(distance)
	reduction := clampF(d.cfg.Scaling.SpacingReduction, 0, 0.9)
	return base * (1.0 - level*reduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
