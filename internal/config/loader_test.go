package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chomp.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	// No custom path and no user/local config in a test environment
	// should land on the embedded default.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def := DefaultChompConfig()
	if cfg.Simulation.TickHz != def.Simulation.TickHz {
		t.Errorf("expected tick_hz %d, got %d", def.Simulation.TickHz, cfg.Simulation.TickHz)
	}
	if cfg.Collision.OverlapThreshold != def.Collision.OverlapThreshold {
		t.Errorf("expected overlap_threshold %d, got %d", def.Collision.OverlapThreshold, cfg.Collision.OverlapThreshold)
	}
	if cfg.Gameplay.PelletPoints != def.Gameplay.PelletPoints {
		t.Errorf("expected pellet_points %d, got %d", def.Gameplay.PelletPoints, cfg.Gameplay.PelletPoints)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfigFile(t, `
simulation:
  tick_hz: 20
  max_ticks_per_frame: 8
collision:
  overlap_threshold: 2
gameplay:
  lives: 5
  pellet_points: 25
ghosts:
  chase_bias: 0.6
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Simulation.TickHz != 20 {
		t.Errorf("expected tick_hz 20, got %d", cfg.Simulation.TickHz)
	}
	if cfg.Simulation.MaxTicksPerFrame != 8 {
		t.Errorf("expected max_ticks_per_frame 8, got %d", cfg.Simulation.MaxTicksPerFrame)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("expected lives 5, got %d", cfg.Gameplay.Lives)
	}
	if cfg.Ghosts.ChaseBias != 0.6 {
		t.Errorf("expected chase_bias 0.6, got %v", cfg.Ghosts.ChaseBias)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := writeConfigFile(t, "simulation: [not, a, mapping")

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestSanitizeRepairsBadValues(t *testing.T) {
	path := writeConfigFile(t, `
simulation:
  tick_hz: 0
  max_ticks_per_frame: -1
collision:
  overlap_threshold: -3
gameplay:
  lives: -1
  pellet_points: 0
ghosts:
  chase_bias: 1.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def := DefaultChompConfig()
	if cfg.Simulation.TickHz != def.Simulation.TickHz {
		t.Errorf("tick_hz not repaired: got %d", cfg.Simulation.TickHz)
	}
	if cfg.Simulation.MaxTicksPerFrame != def.Simulation.MaxTicksPerFrame {
		t.Errorf("max_ticks_per_frame not repaired: got %d", cfg.Simulation.MaxTicksPerFrame)
	}
	if cfg.Collision.OverlapThreshold != def.Collision.OverlapThreshold {
		t.Errorf("overlap_threshold not repaired: got %d", cfg.Collision.OverlapThreshold)
	}
	if cfg.Gameplay.Lives != def.Gameplay.Lives {
		t.Errorf("lives not repaired: got %d", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.PelletPoints != def.Gameplay.PelletPoints {
		t.Errorf("pellet_points not repaired: got %d", cfg.Gameplay.PelletPoints)
	}
	if cfg.Ghosts.ChaseBias != def.Ghosts.ChaseBias {
		t.Errorf("chase_bias not repaired: got %v", cfg.Ghosts.ChaseBias)
	}
}

func TestSanitizeKeepsZeroLives(t *testing.T) {
	// Zero spare lives is a legal hardcore setting, not a broken value.
	path := writeConfigFile(t, `
gameplay:
  lives: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gameplay.Lives != 0 {
		t.Errorf("expected lives 0 to survive, got %d", cfg.Gameplay.Lives)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		bias   float64
	}{
		{DifficultyEasy, 3, 0.5},
		{DifficultyNormal, 2, 0.75},
		{DifficultyHard, 1, 0.9},
	}

	for _, tc := range tests {
		cfg := DefaultChompConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Gameplay.Lives != tc.lives {
			t.Errorf("%s: expected lives %d, got %d", tc.preset, tc.lives, cfg.Gameplay.Lives)
		}
		if cfg.Ghosts.ChaseBias != tc.bias {
			t.Errorf("%s: expected chase_bias %v, got %v", tc.preset, tc.bias, cfg.Ghosts.ChaseBias)
		}
	}
}

func TestApplyPresetFixedKeepsConfig(t *testing.T) {
	cfg := DefaultChompConfig()
	cfg.Gameplay.Lives = 7
	cfg.Ghosts.ChaseBias = 0.33

	ApplyPreset(&cfg, DifficultyFixed)

	if cfg.Gameplay.Lives != 7 || cfg.Ghosts.ChaseBias != 0.33 {
		t.Errorf("fixed preset modified config: lives=%d bias=%v", cfg.Gameplay.Lives, cfg.Ghosts.ChaseBias)
	}
}
