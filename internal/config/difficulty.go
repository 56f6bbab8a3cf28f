package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
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

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GhostSpeed returns the ghost speed for the current difficulty level.
//
// The scaled speed is capped by MaxGhostSpeed and then lowered to the nearest
// 1/n, so a ghost covers exactly one tile in n ticks. Ghosts can only turn into
// a side corridor when tile-aligned.
func (d *DifficultyManager) GhostSpeed(base float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	v := base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
	if limit := d.cfg.Scaling.MaxGhostSpeed; limit > 0 && v > limit {
		v = limit
	}
	return TileAligned(v)
}

// TileAligned lowers v to the nearest speed of the form 1/n.
func TileAligned(v float64) float64 {
	if v <= 0 {
		return v
	}
	steps := math.Ceil(1/v - 1e-9)
	if steps < 1 {
		steps = 1
	}
	return 1 / steps
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
