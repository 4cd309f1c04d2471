package config

import (
	_ "embed"
)

//go:embed defaults/chomp.yaml
var defaultChompYAML []byte

// DefaultChompConfig returns the default chomp configuration.
// The 10 Hz tick rate, cap of 5 ticks per frame and overlap threshold of
// 3 sub-units are tuning constants carried over from play-testing; they
// are exposed here rather than hardcoded in the game.
func DefaultChompConfig() ChompConfig {
	return ChompConfig{
		Simulation: SimulationConfig{
			TickHz:           10,
			MaxTicksPerFrame: 5,
		},
		Collision: CollisionConfig{
			OverlapThreshold: 3,
		},
		Gameplay: GameplayConfig{
			Lives:        2,
			PelletPoints: 10,
		},
		Ghosts: GhostConfig{
			ChaseBias: 0.75,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChompYAML
}
