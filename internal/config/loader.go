package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the chomp configuration.
// Search order: customPath -> ~/.chomp/configs/chomp.yaml -> ./configs/chomp.yaml -> embedded default
func Load(customPath string) (ChompConfig, error) {
	var cfg ChompConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("chomp.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/chomp.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultChompYAML, &cfg); err != nil {
		return DefaultChompConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// sanitize replaces unusable values with defaults so a sparse or broken
// config file degrades to playable settings instead of a stalled game.
func sanitize(cfg ChompConfig) ChompConfig {
	def := DefaultChompConfig()

	if cfg.Simulation.TickHz <= 0 {
		cfg.Simulation.TickHz = def.Simulation.TickHz
	}
	if cfg.Simulation.MaxTicksPerFrame <= 0 {
		cfg.Simulation.MaxTicksPerFrame = def.Simulation.MaxTicksPerFrame
	}
	if cfg.Collision.OverlapThreshold < 0 {
		cfg.Collision.OverlapThreshold = def.Collision.OverlapThreshold
	}
	if cfg.Gameplay.Lives < 0 {
		cfg.Gameplay.Lives = def.Gameplay.Lives
	}
	if cfg.Gameplay.PelletPoints <= 0 {
		cfg.Gameplay.PelletPoints = def.Gameplay.PelletPoints
	}
	if cfg.Ghosts.ChaseBias < 0 || cfg.Ghosts.ChaseBias > 1 {
		cfg.Ghosts.ChaseBias = def.Ghosts.ChaseBias
	}

	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chomp", "configs", filename)
}
