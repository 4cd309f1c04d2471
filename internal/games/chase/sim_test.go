package chase

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chase/engine"
)

// fakeWorld is a scriptable stand-in for the level engine: agents only move
// when a test's onTick hook moves them.
type fakeWorld struct {
	player  *engine.Agent
	ghosts  []*engine.Agent
	width   int
	height  int
	tiles   [][]engine.Tile
	pellets int
	ticks   int
	onTick  func(*fakeWorld)
}

func newFakeWorld() *fakeWorld {
	w := &fakeWorld{
		width:  28,
		height: 19,
		player: &engine.Agent{X: 8, Y: 8},
		ghosts: []*engine.Agent{{X: 60, Y: 40, Active: true}},
	}
	w.tiles = make([][]engine.Tile, w.height)
	for y := range w.tiles {
		w.tiles[y] = make([]engine.Tile, w.width)
	}
	return w
}

func (w *fakeWorld) addPellet(tx, ty int) {
	w.tiles[ty][tx] = engine.Tile{Kind: engine.TilePellet}
	w.pellets++
}

func (w *fakeWorld) Tick() {
	w.ticks++
	if w.onTick != nil {
		w.onTick(w)
	}
}

func (w *fakeWorld) Player() *engine.Agent   { return w.player }
func (w *fakeWorld) Ghosts() []*engine.Agent { return w.ghosts }
func (w *fakeWorld) Width() int              { return w.width }
func (w *fakeWorld) Height() int             { return w.height }
func (w *fakeWorld) PelletsRemaining() int   { return w.pellets }
func (w *fakeWorld) ConsumePellet()          { w.pellets-- }

func (w *fakeWorld) TileAt(tx, ty int) *engine.Tile {
	if tx < 0 || tx >= w.width || ty < 0 || ty >= w.height {
		return nil
	}
	return &w.tiles[ty][tx]
}

// newFakeGame builds a game whose world factory returns the given fakes in
// order, repeating the last one, and brings it into play state.
func newFakeGame(t *testing.T, worlds ...*fakeWorld) (*Game, *fakeWorld) {
	t.Helper()
	i := 0
	g := New()
	g.newWorld = func(level int) World {
		w := worlds[core.Min(i, len(worlds)-1)]
		i++
		return w
	}
	g.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in, 0)
	if g.state != StatePlay {
		t.Fatalf("state = %q after confirm, want play", g.state)
	}
	return g, worlds[0]
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAdvanceTickCapRetainsBudget(t *testing.T) {
	w := newFakeWorld()
	w.addPellet(1, 1)
	g, _ := newFakeGame(t, w)

	// ten ticks' worth of real time in a single frame
	g.advance(10 * g.tickDur)

	if w.ticks != g.cfg.Simulation.MaxTicksPerFrame {
		t.Errorf("ticks = %d, want cap %d", w.ticks, g.cfg.Simulation.MaxTicksPerFrame)
	}
	want := 5 * g.tickDur
	if !approx(g.accum, want) {
		t.Errorf("retained budget = %v, want %v", g.accum, want)
	}

	// the deferred ticks run on the next frame without new time
	g.advance(0)
	if w.ticks != 10 {
		t.Errorf("ticks after second frame = %d, want 10", w.ticks)
	}
}

func TestAdvanceIsNoOpOutsidePlay(t *testing.T) {
	w := newFakeWorld()
	w.addPellet(1, 1)
	g, _ := newFakeGame(t, w)

	g.state = StateTitle
	g.advance(10 * g.tickDur)
	if w.ticks != 0 {
		t.Errorf("ticks = %d while on title, want 0", w.ticks)
	}

	g.state = StateGameOver
	g.advance(10 * g.tickDur)
	if w.ticks != 0 {
		t.Errorf("ticks = %d while game over, want 0", w.ticks)
	}
}

func TestEatPelletOnTileCenterOnly(t *testing.T) {
	w := newFakeWorld()
	w.addPellet(2, 2)
	w.addPellet(10, 10) // keeps the counter nonzero after the eat
	w.player.X = 2 * engine.SubUnits
	w.player.Y = 2 * engine.SubUnits
	g, _ := newFakeGame(t, w)

	g.advance(g.tickDur)

	if g.score != g.cfg.Gameplay.PelletPoints {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Gameplay.PelletPoints)
	}
	if w.pellets != 1 {
		t.Errorf("pellets = %d, want 1", w.pellets)
	}
	tile := w.TileAt(2, 2)
	if tile.Kind != engine.TileEmpty || !tile.Destroyed {
		t.Errorf("eaten tile = %+v, want destroyed empty", *tile)
	}

	// a second tick on the same tile must not credit again
	g.advance(g.tickDur)
	if g.score != g.cfg.Gameplay.PelletPoints || w.pellets != 1 {
		t.Errorf("second tick re-credited the eat: score %d pellets %d", g.score, w.pellets)
	}
}

func TestNoEatWhileStraddlingTiles(t *testing.T) {
	w := newFakeWorld()
	w.addPellet(2, 2)
	w.addPellet(10, 10)
	w.player.X = 2*engine.SubUnits + 1 // one sub-unit off center
	w.player.Y = 2 * engine.SubUnits
	g, _ := newFakeGame(t, w)

	g.advance(g.tickDur)
	if g.score != 0 || w.pellets != 2 {
		t.Errorf("eat credited off center: score %d pellets %d", g.score, w.pellets)
	}
}

func TestEatGuardsOutOfRangeTiles(t *testing.T) {
	w := newFakeWorld()
	w.addPellet(1, 1)
	w.player.X = 0
	w.player.Y = (w.height + 2) * engine.SubUnits // outside the grid
	g, _ := newFakeGame(t, w)

	g.advance(g.tickDur) // must not panic, must not credit
	if g.score != 0 {
		t.Errorf("score = %d for an out-of-range tile, want 0", g.score)
	}
}

func TestLastPelletAdvancesLevelOnce(t *testing.T) {
	w := newFakeWorld()
	w.addPellet(2, 2)
	w.player.X = 2 * engine.SubUnits
	w.player.Y = 2 * engine.SubUnits
	next := newFakeWorld()
	next.addPellet(1, 1)
	g, _ := newFakeGame(t, w, next)

	g.advance(10 * g.tickDur)

	if g.level != 2 {
		t.Errorf("level = %d after clearing the board, want 2", g.level)
	}
	if g.accum != 0 {
		t.Errorf("accum = %v after level advance, want 0", g.accum)
	}
	if w.ticks != 1 {
		t.Errorf("ticks = %d, want the frame to end at the advance", w.ticks)
	}
	if g.state != StatePlay {
		t.Errorf("state = %q, want play to continue", g.state)
	}

	// fresh world installed, so the zero counter cannot re-trigger
	if g.world != World(next) {
		t.Error("old world still installed after level advance")
	}
	g.advance(g.tickDur)
	if g.level != 2 {
		t.Errorf("level advanced again to %d on the next frame", g.level)
	}
}

func TestCollisionEndsFrameAndResetsBudget(t *testing.T) {
	w := newFakeWorld()
	w.addPellet(1, 1)
	w.onTick = func(fw *fakeWorld) {
		// ghost teleports onto the player: overlap on the first tick
		fw.ghosts[0].X = fw.player.X
		fw.ghosts[0].Y = fw.player.Y
	}
	respawn := newFakeWorld()
	respawn.addPellet(1, 1)
	g, _ := newFakeGame(t, w, respawn)

	livesBefore := g.lives
	g.advance(10 * g.tickDur)

	if w.ticks != 1 {
		t.Errorf("ticks = %d, want the frame to stop at the catch", w.ticks)
	}
	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d, want %d", g.lives, livesBefore-1)
	}
	if g.accum != 0 {
		t.Errorf("accum = %v after respawn, want 0", g.accum)
	}
	if g.world != World(respawn) {
		t.Error("respawn did not install a fresh world")
	}
	if g.state != StatePlay {
		t.Errorf("state = %q, want play with lives remaining", g.state)
	}
}

func TestCagedGhostCannotCatch(t *testing.T) {
	w := newFakeWorld()
	w.addPellet(1, 1)
	w.ghosts[0].Caged = true
	w.onTick = func(fw *fakeWorld) {
		fw.ghosts[0].X = fw.player.X
		fw.ghosts[0].Y = fw.player.Y
	}
	g, _ := newFakeGame(t, w)

	livesBefore := g.lives
	g.advance(5 * g.tickDur)
	if g.lives != livesBefore {
		t.Errorf("caged ghost cost a life: lives %d, want %d", g.lives, livesBefore)
	}
	if w.ticks != 5 {
		t.Errorf("ticks = %d, want 5", w.ticks)
	}
}
