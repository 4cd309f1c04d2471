package chase

import (
	"github.com/vovakirdan/tui-chomp/internal/games/chase/engine"
)

// advance folds real elapsed seconds into the tick budget and runs as many
// fixed-duration ticks as the budget and the per-frame cap allow. Budget
// beyond the cap is kept for the next frame, so the simulation defers
// ticks after a stall instead of dropping them.
func (g *Game) advance(dt float64) {
	if g.state != StatePlay {
		return
	}

	g.accum += dt
	steps := 0
	for g.accum >= g.tickDur && steps < g.cfg.Simulation.MaxTicksPerFrame {
		g.accum -= g.tickDur
		steps++

		g.snapshotPositions()
		g.world.Tick()

		if g.playerCaught() {
			g.loseLife()
			return
		}

		g.eatPellet()
		if g.world.PelletsRemaining() == 0 {
			g.advanceLevel()
			return
		}
	}
}

// snapshotPositions records every agent's position before a tick so the
// collision check can compare motion endpoints.
func (g *Game) snapshotPositions() {
	p := g.world.Player()
	g.prevPlayer = point{X: p.X, Y: p.Y}

	ghosts := g.world.Ghosts()
	if len(g.prevGhosts) != len(ghosts) {
		g.prevGhosts = make([]ghostSample, len(ghosts))
	}
	for i, gh := range ghosts {
		g.prevGhosts[i].Prev = point{X: gh.X, Y: gh.Y}
	}
}

// playerCaught runs the collision check for the tick that just completed.
func (g *Game) playerCaught() bool {
	p := g.world.Player()
	cur := point{X: p.X, Y: p.Y}

	ghosts := g.world.Ghosts()
	for i, gh := range ghosts {
		g.prevGhosts[i].Cur = point{X: gh.X, Y: gh.Y}
		g.prevGhosts[i].Active = gh.Active
		g.prevGhosts[i].Caged = gh.Caged
	}

	xPeriod := g.world.Width() * engine.SubUnits
	return checkCollision(g.prevPlayer, cur, g.prevGhosts, xPeriod, g.cfg.Collision.OverlapThreshold)
}

// eatPellet credits a pellet only when the player sits exactly on a tile
// center, so an eat is never counted while straddling a tile boundary.
func (g *Game) eatPellet() {
	p := g.world.Player()
	if !p.OnTileCenter() {
		return
	}

	tx, ty := p.TilePos()
	tile := g.world.TileAt(tx, ty)
	if tile == nil {
		return
	}
	if tile.Kind != engine.TilePellet || tile.Destroyed {
		return
	}

	tile.Destroyed = true
	tile.Kind = engine.TileEmpty
	g.world.ConsumePellet()
	g.score += g.cfg.Gameplay.PelletPoints
}
