package chase

import (
	"github.com/vovakirdan/tui-chomp/internal/core"
)

// point is an absolute sub-unit position sampled at a tick boundary.
type point struct {
	X, Y int
}

// ghostSample pairs a ghost's positions before and after one tick with the
// flags that decide whether it can catch at all.
type ghostSample struct {
	Prev, Cur point
	Active    bool
	Caged     bool
}

// checkCollision reports whether any ghost caught the player during the tick
// that moved the agents from their Prev to their Cur positions. The x axis
// wraps with the given period; the y axis does not.
//
// Two tests per ghost. The overlap test compares current positions only.
// The tunneling test catches agents that swapped sides within the tick:
// when the pair stays aligned on one axis at both samples, a sign flip (or
// an exact zero) of the signed delta on the other axis means they passed
// through each other even though neither endpoint overlaps.
func checkCollision(prevPlayer, curPlayer point, ghosts []ghostSample, xPeriod, threshold int) bool {
	for _, g := range ghosts {
		if !g.Active || g.Caged {
			continue
		}

		dx := core.WrapDistance(curPlayer.X, g.Cur.X, xPeriod)
		dy := core.LinearDistance(curPlayer.Y, g.Cur.Y)
		if dx <= threshold && dy <= threshold {
			return true
		}

		// Horizontal crossing: vertically aligned at both samples.
		dyPrev := core.LinearDistance(prevPlayer.Y, g.Prev.Y)
		if dyPrev <= threshold && dy <= threshold {
			before := core.SignedWrapDelta(prevPlayer.X, g.Prev.X, xPeriod)
			after := core.SignedWrapDelta(curPlayer.X, g.Cur.X, xPeriod)
			if crossed(before, after) {
				return true
			}
		}

		// Vertical crossing: horizontally aligned at both samples.
		dxPrev := core.WrapDistance(prevPlayer.X, g.Prev.X, xPeriod)
		if dxPrev <= threshold && dx <= threshold {
			before := prevPlayer.Y - g.Prev.Y
			after := curPlayer.Y - g.Cur.Y
			if crossed(before, after) {
				return true
			}
		}
	}
	return false
}

// crossed reports a sign flip between the two signed deltas, counting an
// exact zero at either sample as a crossing.
func crossed(before, after int) bool {
	if before == 0 || after == 0 {
		return true
	}
	return (before > 0) != (after > 0)
}
