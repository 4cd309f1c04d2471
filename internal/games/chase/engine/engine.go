package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

// Options tunes a single engine instance.
type Options struct {
	// Seed drives ghost decision-making; same seed, same chase.
	Seed int64

	// ChaseBias is the probability (0..1) that a ghost turns toward the
	// player at an intersection instead of picking a random open direction.
	ChaseBias float64
}

// Engine is one live level instance: the tile grid, the pellet counter and
// all agents. It is created fresh on game start, on life loss and on level
// advance; agents never outlive their engine.
type Engine struct {
	level  Level
	width  int // tiles
	height int
	tiles  [][]Tile // indexed [y][x]

	pellets int
	player  *Agent
	ghosts  []*Agent

	hasDoor      bool
	doorX, doorY int // tile coords ghosts respawn at on release

	rng       *rand.Rand
	chaseBias float64
	tick      int
}

// New builds a fresh engine for the given level. The player starts inactive;
// the caller flips Active when play begins.
func New(lvl Level, opts Options) *Engine {
	e := &Engine{
		level:     lvl,
		width:     lvl.Width,
		height:    lvl.Height,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		chaseBias: opts.ChaseBias,
	}

	e.tiles = make([][]Tile, e.height)
	for y := range e.tiles {
		e.tiles[y] = make([]Tile, e.width)
	}

	ghostIdx := 0
	for y, row := range lvl.Rows {
		for x, ch := range row {
			switch ch {
			case '#':
				e.tiles[y][x] = Tile{Kind: TileWall}
			case '.':
				e.tiles[y][x] = Tile{Kind: TilePellet}
				e.pellets++
			case 'P':
				e.player = &Agent{
					X:   x * SubUnits,
					Y:   y * SubUnits,
					Dir: DirLeft,
				}
			case 'G':
				e.tiles[y][x] = Tile{Kind: TileCage}
				g := &Agent{
					X:      x * SubUnits,
					Y:      y * SubUnits,
					Active: true,
					Caged:  true,
				}
				if ghostIdx < len(lvl.GhostRelease) {
					g.releaseAt = lvl.GhostRelease[ghostIdx]
				} else {
					g.releaseAt = ghostIdx * defaultReleaseSpacing
				}
				ghostIdx++
				e.ghosts = append(e.ghosts, g)
			case 'D':
				e.hasDoor = true
				e.doorX, e.doorY = x, y
			}
		}
	}

	// Levels without a door release their ghosts immediately in place.
	if !e.hasDoor {
		for _, g := range e.ghosts {
			g.Caged = false
		}
	}

	return e
}

// defaultReleaseSpacing is the tick gap between ghost releases when the
// level does not specify its own timings.
const defaultReleaseSpacing = 30

// Width returns the grid width in tiles.
func (e *Engine) Width() int { return e.width }

// Height returns the grid height in tiles.
func (e *Engine) Height() int { return e.height }

// Level returns the level this engine was built from.
func (e *Engine) Level() Level { return e.level }

// Player returns the player agent.
func (e *Engine) Player() *Agent { return e.player }

// Ghosts returns all ghost agents.
func (e *Engine) Ghosts() []*Agent { return e.ghosts }

// PelletsRemaining returns the number of pellets not yet eaten.
func (e *Engine) PelletsRemaining() int { return e.pellets }

// ConsumePellet decrements the remaining-pellet counter. Called by the
// game core when it credits an eat; the tile flip is done by the caller.
func (e *Engine) ConsumePellet() {
	if e.pellets > 0 {
		e.pellets--
	}
}

// TileAt returns the tile at the given tile coordinates, or nil when the
// coordinates fall outside the grid.
func (e *Engine) TileAt(tx, ty int) *Tile {
	if tx < 0 || tx >= e.width || ty < 0 || ty >= e.height {
		return nil
	}
	return &e.tiles[ty][tx]
}

// Tick advances every agent by one simulation step: the player first, then
// all ghosts. One call moves each agent at most one sub-unit.
func (e *Engine) Tick() {
	e.tick++
	e.movePlayer()
	for _, g := range e.ghosts {
		e.moveGhost(g)
	}
}

func (e *Engine) movePlayer() {
	p := e.player
	if p == nil || !p.Active {
		return
	}

	// Reversal along the current segment is always legal and takes effect
	// immediately; other turns wait for the next tile center.
	if p.NextDir != DirNone && p.NextDir == p.Dir.Opposite() && !p.OnTileCenter() {
		p.Dir = p.NextDir
		p.NextDir = DirNone
	}

	if p.OnTileCenter() {
		tx, ty := p.TilePos()
		if p.NextDir != DirNone && e.canMove(tx, ty, p.NextDir, false) {
			p.Dir = p.NextDir
			p.NextDir = DirNone
		}
		if p.Dir == DirNone || !e.canMove(tx, ty, p.Dir, false) {
			return // blocked: wait at the center until a turn opens
		}
	}

	e.advance(p)
}

func (e *Engine) moveGhost(g *Agent) {
	if !g.Active {
		return
	}

	if g.Caged {
		if e.hasDoor && e.tick >= g.releaseAt {
			g.Caged = false
			g.X = e.doorX * SubUnits
			g.Y = e.doorY * SubUnits
			g.Dir = e.pickGhostDir(g)
		}
		return
	}

	if g.OnTileCenter() {
		g.Dir = e.pickGhostDir(g)
		if g.Dir == DirNone {
			return
		}
	}

	e.advance(g)
}

// pickGhostDir chooses the ghost's direction at a tile center: open
// directions only, no instant reversal unless it is the sole option, and
// with probability chaseBias the one that closes the wrap-aware distance
// to the player.
func (e *Engine) pickGhostDir(g *Agent) Direction {
	tx, ty := g.TilePos()

	var open []Direction
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if e.canMove(tx, ty, d, false) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		return DirNone
	}

	// Drop the reverse of the current direction when anything else is open.
	if g.Dir != DirNone && len(open) > 1 {
		filtered := open[:0]
		for _, d := range open {
			if d != g.Dir.Opposite() {
				filtered = append(filtered, d)
			}
		}
		if len(filtered) > 0 {
			open = filtered
		}
	}

	if e.player != nil && e.rng.Float64() < e.chaseBias {
		best := open[0]
		bestDist := e.distTowards(g, best)
		for _, d := range open[1:] {
			if dist := e.distTowards(g, d); dist < bestDist {
				best = d
				bestDist = dist
			}
		}
		return best
	}

	return open[e.rng.Intn(len(open))]
}

// distTowards scores a candidate direction by the wrap-aware distance from
// the adjacent tile center in that direction to the player.
func (e *Engine) distTowards(g *Agent, d Direction) int {
	dx, dy := d.Delta()
	period := e.width * SubUnits
	nx := mod(g.X+dx*SubUnits, period)
	ny := g.Y + dy*SubUnits
	return core.WrapDistance(nx, e.player.X, period) + core.LinearDistance(ny, e.player.Y)
}

// canMove reports whether the tile adjacent to (tx, ty) in direction d is
// enterable. The x axis wraps; the y axis does not, so stepping off the top
// or bottom is simply blocked.
func (e *Engine) canMove(tx, ty int, d Direction, allowCage bool) bool {
	dx, dy := d.Delta()
	nx := mod(tx+dx, e.width)
	ny := ty + dy
	if ny < 0 || ny >= e.height {
		return false
	}
	switch e.tiles[ny][nx].Kind {
	case TileWall:
		return false
	case TileCage:
		return allowCage
	}
	return true
}

// advance moves the agent one sub-unit in its current direction, wrapping
// the x coordinate around the board period.
func (e *Engine) advance(a *Agent) {
	dx, dy := a.Dir.Delta()
	a.X = mod(a.X+dx, e.width*SubUnits)
	a.Y += dy
}

func mod(x, p int) int {
	return ((x % p) + p) % p
}
