package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevelYAMLValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no player",
			yaml: "id: 1\nname: bad\nlayout:\n  - \"###\"\n  - \"#.#\"\n  - \"###\"\n",
		},
		{
			name: "two players",
			yaml: "id: 1\nname: bad\nlayout:\n  - \"#####\"\n  - \"#P.P#\"\n  - \"#####\"\n",
		},
		{
			name: "ghost without door",
			yaml: "id: 1\nname: bad\nlayout:\n  - \"#####\"\n  - \"#PG.#\"\n  - \"#####\"\n",
		},
		{
			name: "ragged rows",
			yaml: "id: 1\nname: bad\nlayout:\n  - \"#####\"\n  - \"#P.#\"\n  - \"#####\"\n",
		},
		{
			name: "unknown tile",
			yaml: "id: 1\nname: bad\nlayout:\n  - \"#####\"\n  - \"#P.X#\"\n  - \"#####\"\n",
		},
		{
			name: "no pellets",
			yaml: "id: 1\nname: bad\nlayout:\n  - \"#####\"\n  - \"#P  #\"\n  - \"#####\"\n",
		},
		{
			name: "negative release",
			yaml: "id: 1\nname: bad\nghost_release: [-1]\nlayout:\n  - \"#####\"\n  - \"#PGD#\"\n  - \"#####\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevelYAML([]byte(tt.yaml)); err == nil {
				t.Error("expected a validation error, got nil")
			}
		})
	}
}

func TestParseLevelYAMLValid(t *testing.T) {
	lvl, err := ParseLevelYAML([]byte(
		"id: 3\nname: ok\nghost_release: [0, 10]\nlayout:\n  - \"######\"\n  - \"#PGGD#\"\n  - \"#....#\"\n  - \"######\"\n"))
	if err != nil {
		t.Fatalf("ParseLevelYAML: %v", err)
	}
	if lvl.ID != 3 || lvl.Width != 6 || lvl.Height != 4 {
		t.Errorf("level = %d %dx%d, want 3 6x4", lvl.ID, lvl.Width, lvl.Height)
	}
}

func TestDefaultLibrary(t *testing.T) {
	lib, err := DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}
	if lib.Count() < 2 {
		t.Fatalf("Count = %d, want at least 2", lib.Count())
	}
	if lib.Get(1).ID != 1 || lib.Get(2).ID != 2 {
		t.Errorf("library not sorted by id: %d, %d", lib.Get(1).ID, lib.Get(2).ID)
	}
}

func TestLibraryGetWraps(t *testing.T) {
	lib, err := DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}
	n := lib.Count()
	if got := lib.Get(n + 1); got.ID != lib.Get(1).ID {
		t.Errorf("Get(%d).ID = %d, want %d", n+1, got.ID, lib.Get(1).ID)
	}
	if got := lib.Get(0); got.ID != lib.Get(1).ID {
		t.Errorf("Get(0).ID = %d, want %d", got.ID, lib.Get(1).ID)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	doc := "id: 1\nname: custom\nlayout:\n  - \"#####\"\n  - \"#P..#\"\n  - \"#####\"\n"
	if err := os.WriteFile(filepath.Join(dir, "one.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if lib.Count() != 1 || lib.Get(1).Name != "custom" {
		t.Errorf("loaded %d levels, first %q; want 1 %q", lib.Count(), lib.Get(1).Name, "custom")
	}

	if _, err := LoadDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("LoadDir on a missing directory: expected error")
	}
}
