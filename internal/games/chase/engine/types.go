// Package engine owns the level grid and per-tick agent movement for the
// chase game: tile layout, pellet placement, player steering and ghost
// pursuit. The game core consumes it through a narrow read/tick interface
// and never reaches into movement logic.
package engine

// SubUnits is the number of absolute-coordinate sub-units per tile.
// Agents move one sub-unit per tick, which gives smooth inter-tile motion;
// an agent is exactly on a tile center when both coordinates are multiples
// of SubUnits.
const SubUnits = 4

// Direction is a movement direction on the grid.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the per-tick sub-unit offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// TileKind is the closed set of grid cell kinds.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileWall
	TileCage
	TilePellet
)

// Tile is a single grid cell. The game core is permitted to flip a pellet
// to destroyed/empty when it credits an eat; everything else is read-only
// from its point of view.
type Tile struct {
	Kind      TileKind
	Destroyed bool // set once when a pellet is eaten
}

// Agent is the player or a ghost. Positions are absolute sub-unit
// coordinates: X wraps modulo SubUnits*width (tunnel rows), Y is bounded.
type Agent struct {
	X, Y    int
	Active  bool
	Caged   bool // ghosts only; caged ghosts neither move nor collide
	Dir     Direction
	NextDir Direction // buffered turn request, applied at tile centers

	releaseAt int // tick at which a caged ghost leaves the cage
}

// OnTileCenter reports whether the agent sits exactly on a tile center.
func (a *Agent) OnTileCenter() bool {
	return a.X%SubUnits == 0 && a.Y%SubUnits == 0
}

// TilePos returns the agent's tile coordinates. Only meaningful when the
// agent is on a tile center; between centers it floors toward the tile
// being left.
func (a *Agent) TilePos() (tx, ty int) {
	return a.X / SubUnits, a.Y / SubUnits
}
