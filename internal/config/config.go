// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// PacmanConfig contains all configuration for the game.
type PacmanConfig struct {
	Movement   PacmanMovement   `yaml:"movement"`
	Sizes      PacmanSizes      `yaml:"sizes"`
	Gameplay   PacmanGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanMovement defines speeds in tiles per tick.
type PacmanMovement struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	GhostSpeed  float64 `yaml:"ghost_speed"`
}

// PacmanSizes defines bounding square sides in tiles.
type PacmanSizes struct {
	Player float64 `yaml:"player"`
	Ghost  float64 `yaml:"ghost"`
	Pellet float64 `yaml:"pellet"`
}

// PacmanGameplay defines scoring, lives and pacing.
type PacmanGameplay struct {
	Lives        int `yaml:"lives"`
	PelletScore  int `yaml:"pellet_score"`
	TickRate     int `yaml:"tick_rate"`     // ticks per second
	RespawnDelay int `yaml:"respawn_delay"` // ticks frozen after being caught
}

// Validate reports the first value the engine cannot run with.
func (c PacmanConfig) Validate() error {
	switch {
	case c.Movement.PlayerSpeed <= 0 || c.Movement.PlayerSpeed > 1:
		return fmt.Errorf("%w: movement.player_speed must be in (0, 1], got %v", ErrInvalidConfig, c.Movement.PlayerSpeed)
	case c.Movement.GhostSpeed <= 0 || c.Movement.GhostSpeed > 1:
		return fmt.Errorf("%w: movement.ghost_speed must be in (0, 1], got %v", ErrInvalidConfig, c.Movement.GhostSpeed)
	case c.Sizes.Player <= 0 || c.Sizes.Player > 1:
		return fmt.Errorf("%w: sizes.player must be in (0, 1], got %v", ErrInvalidConfig, c.Sizes.Player)
	case c.Sizes.Ghost <= 0 || c.Sizes.Ghost > 1:
		return fmt.Errorf("%w: sizes.ghost must be in (0, 1], got %v", ErrInvalidConfig, c.Sizes.Ghost)
	case c.Sizes.Pellet <= 0 || c.Sizes.Pellet > 1:
		return fmt.Errorf("%w: sizes.pellet must be in (0, 1], got %v", ErrInvalidConfig, c.Sizes.Pellet)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: gameplay.lives must be at least 1, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	case c.Gameplay.TickRate < 1:
		return fmt.Errorf("%w: gameplay.tick_rate must be at least 1, got %d", ErrInvalidConfig, c.Gameplay.TickRate)
	case c.Gameplay.RespawnDelay < 0:
		return fmt.Errorf("%w: gameplay.respawn_delay must not be negative, got %d", ErrInvalidConfig, c.Gameplay.RespawnDelay)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ghost speed at max difficulty
	MaxGhostSpeed   float64 `yaml:"max_ghost_speed"`  // Hard cap, 0 for none
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
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
