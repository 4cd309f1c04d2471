package engine

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultLevels embed.FS

// Level is a parsed board definition. Rows hold one rune per tile:
// '#' wall, '.' pellet, ' ' open floor, 'P' player spawn, 'G' ghost spawn
// (the tile becomes cage floor), 'D' the door tile released ghosts enter at.
type Level struct {
	ID           int      `yaml:"id"`
	Name         string   `yaml:"name"`
	GhostRelease []int    `yaml:"ghost_release"`
	Rows         []string `yaml:"layout"`

	Width  int `yaml:"-"`
	Height int `yaml:"-"`
}

// ParseLevelYAML decodes and validates a single level document.
func ParseLevelYAML(data []byte) (Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, fmt.Errorf("levels: parse: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

func (l *Level) validate() error {
	if len(l.Rows) == 0 {
		return fmt.Errorf("levels: %q has no layout rows", l.Name)
	}
	l.Height = len(l.Rows)
	l.Width = len(l.Rows[0])

	players, ghosts, doors, pellets := 0, 0, 0, 0
	for y, row := range l.Rows {
		if len(row) != l.Width {
			return fmt.Errorf("levels: %q row %d is %d tiles wide, want %d", l.Name, y, len(row), l.Width)
		}
		for x, ch := range row {
			switch ch {
			case '#', ' ':
			case '.':
				pellets++
			case 'P':
				players++
			case 'G':
				ghosts++
			case 'D':
				doors++
			default:
				return fmt.Errorf("levels: %q has unknown tile %q at (%d,%d)", l.Name, string(ch), x, y)
			}
		}
	}

	if players != 1 {
		return fmt.Errorf("levels: %q has %d player spawns, want exactly 1", l.Name, players)
	}
	if ghosts > 0 && doors != 1 {
		return fmt.Errorf("levels: %q has ghosts but %d door tiles, want exactly 1", l.Name, doors)
	}
	if pellets == 0 {
		return fmt.Errorf("levels: %q has no pellets", l.Name)
	}
	for i, t := range l.GhostRelease {
		if t < 0 {
			return fmt.Errorf("levels: %q ghost_release[%d] is negative", l.Name, i)
		}
	}
	return nil
}

// Library is an ordered set of levels. Level numbers are 1-based and wrap,
// so play cycles forever through however many boards are installed.
type Library struct {
	levels []Level
}

// DefaultLibrary loads the levels embedded in the binary.
func DefaultLibrary() (*Library, error) {
	return loadFS(defaultLevels, "defaults")
}

// LoadDir loads every .yaml level under root, replacing the defaults.
func LoadDir(root string) (*Library, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("levels: %s is not a directory", root)
	}
	return loadFS(os.DirFS(root), ".")
}

func loadFS(fsys fs.FS, root string) (*Library, error) {
	lib := &Library{}
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("levels: read %s: %w", path, err)
		}
		lvl, err := ParseLevelYAML(data)
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		lib.levels = append(lib.levels, lvl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(lib.levels) == 0 {
		return nil, fmt.Errorf("levels: no level files found")
	}
	sort.Slice(lib.levels, func(i, j int) bool { return lib.levels[i].ID < lib.levels[j].ID })
	return lib, nil
}

// Count returns the number of installed levels.
func (lib *Library) Count() int { return len(lib.levels) }

// Get returns the board for a 1-based level number. Numbers past the end
// wrap around to the start.
func (lib *Library) Get(n int) Level {
	if n < 1 {
		n = 1
	}
	return lib.levels[(n-1)%len(lib.levels)]
}
