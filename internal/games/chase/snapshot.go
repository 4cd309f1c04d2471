package chase

import (
	"github.com/vovakirdan/tui-chomp/internal/games/chase/engine"
)

// AgentSnapshot is one agent's observable state at a frame boundary.
type AgentSnapshot struct {
	X, Y   int
	Dir    engine.Direction
	Active bool
	Caged  bool
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	State       string
	Score       int
	Lives       int
	Level       int
	PelletsLeft int
	Player      AgentSnapshot
	Ghosts      []AgentSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	p := g.world.Player()
	snap := Snapshot{
		State:       g.state,
		Score:       g.score,
		Lives:       g.lives,
		Level:       g.level,
		PelletsLeft: g.world.PelletsRemaining(),
		Player: AgentSnapshot{
			X: p.X, Y: p.Y, Dir: p.Dir, Active: p.Active,
		},
	}
	for _, gh := range g.world.Ghosts() {
		snap.Ghosts = append(snap.Ghosts, AgentSnapshot{
			X: gh.X, Y: gh.Y, Dir: gh.Dir, Active: gh.Active, Caged: gh.Caged,
		})
	}
	return snap
}
