package chase

import (
	"github.com/vovakirdan/tui-chomp/internal/games/chase/engine"
)

// World is the slice of the level engine the game core depends on: one-tick
// advancement, agent and tile reads, and the pellet counter. The engine
// owns movement and pathing; the core owns collisions, eating and lives.
type World interface {
	// Tick moves the player (honoring its requested direction) and every
	// ghost by at most one sub-unit.
	Tick()

	Player() *engine.Agent
	Ghosts() []*engine.Agent

	Width() int
	Height() int

	// TileAt returns nil for out-of-range tile coordinates.
	TileAt(tx, ty int) *engine.Tile

	PelletsRemaining() int
	ConsumePellet()
}

var _ World = (*engine.Engine)(nil)
