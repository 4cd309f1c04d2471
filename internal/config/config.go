// Package config provides YAML-based game configuration loading and
// difficulty management for chomp.
package config

// ChompConfig contains all tunable parameters for the chase game.
type ChompConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Collision  CollisionConfig  `yaml:"collision"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Ghosts     GhostConfig      `yaml:"ghosts"`
}

// SimulationConfig defines the fixed-timestep parameters.
type SimulationConfig struct {
	// TickHz is the fixed simulation rate in ticks per second,
	// independent of the render frame rate.
	TickHz int `yaml:"tick_hz"`

	// MaxTicksPerFrame bounds how many simulation ticks a single rendered
	// frame may run when real frame time spikes. Excess time budget is
	// retained, not discarded.
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"`
}

// CollisionConfig defines collision detection parameters.
type CollisionConfig struct {
	// OverlapThreshold is the catch distance in board sub-units
	// (4 sub-units per tile) applied on both axes.
	OverlapThreshold int `yaml:"overlap_threshold"`
}

// GameplayConfig defines scoring and session parameters.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`         // Spare lives at session start
	PelletPoints int `yaml:"pellet_points"` // Score per pellet eaten
}

// GhostConfig defines pursuer behavior parameters.
type GhostConfig struct {
	// ChaseBias is the probability (0..1) that a ghost picks the direction
	// that closes the wrap-aware distance to the player at an intersection,
	// rather than a random open one.
	ChaseBias float64 `yaml:"chase_bias"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the config based on a difficulty preset.
// The "fixed" preset keeps whatever the config file says.
func ApplyPreset(cfg *ChompConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 3
		cfg.Ghosts.ChaseBias = 0.5
	case DifficultyNormal:
		cfg.Gameplay.Lives = 2
		cfg.Ghosts.ChaseBias = 0.75
	case DifficultyHard:
		cfg.Gameplay.Lives = 1
		cfg.Ghosts.ChaseBias = 0.9
	}
}
