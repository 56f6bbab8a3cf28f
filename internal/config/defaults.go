package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the built-in configuration.
// It mirrors defaults/pacman.yaml.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Movement: PacmanMovement{
			PlayerSpeed: 0.1,
			GhostSpeed:  0.1,
		},
		Sizes: PacmanSizes{
			Player: 0.8,
			Ghost:  1.0,
			Pellet: 0.2,
		},
		Gameplay: PacmanGameplay{
			Lives:        3,
			PelletScore:  10,
			TickRate:     20,
			RespawnDelay: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.25,
				MaxGhostSpeed:   0.2,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPacmanYAML
}
