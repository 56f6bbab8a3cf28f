package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPacman loads the game configuration.
// Search order: customPath -> ~/.pacman/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations fall through to the next candidate instead.
func LoadPacman(customPath string) (PacmanConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PacmanConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return PacmanConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("pacman.yaml"), filepath.Join("configs", "pacman.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decode(defaultPacmanYAML); err == nil {
		return cfg, nil
	}
	return DefaultPacmanConfig(), nil // Fallback to hardcoded if embed fails
}

func decode(data []byte) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PacmanConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PacmanConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacman", "configs", filename)
}

// ApplyPacmanPreset modifies the config based on a difficulty preset.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Movement.GhostSpeed = 0.0625
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Movement.GhostSpeed = 0.125
	}
}

// ParsePacman decodes a YAML document over the defaults and validates it.
func ParsePacman(data []byte) (PacmanConfig, error) {
	return decode(data)
}

// MarshalPacman encodes cfg as YAML, the form stored with journaled runs.
func MarshalPacman(cfg PacmanConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
