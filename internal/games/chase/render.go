package chase

import (
	"fmt"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chase/engine"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	PelletChar = '·'
	PlayerChar = 'ᗧ'
	GhostChar  = 'ᗝ'
	CagedChar  = '⌂'
)

// ghostColors cycles across the pursuers.
var ghostColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	switch g.state {
	case StateTitle:
		g.renderTitle(dst)
	default:
		g.renderHUD(dst)
		g.renderMaze(dst)
		g.renderAgents(dst)
		if g.state == StateGameOver {
			g.renderGameOver(dst)
		}
	}
}

// renderTitle draws the title screen and records the start control's
// screen-space bounds for pointer hit-testing.
func (g *Game) renderTitle(dst *core.Screen) {
	h := dst.Height()

	dst.DrawTextCentered(h/2-5, "C H O M P")
	dst.DrawTextCentered(h/2-3, "Eat every pellet. Dodge the ghosts.")

	label := "▶ START"
	boxW := len(label) + 6
	boxH := 3
	g.startButton = core.NewRect((dst.Width()-boxW)/2, h/2-1, boxW, boxH)
	dst.DrawBox(g.startButton)
	dst.DrawTextColor(g.startButton.X+3, g.startButton.Y+1, label, core.ColorBrightYellow)

	dst.DrawTextCentered(h/2+3, "ENTER to start, arrows or WASD to move")
	dst.DrawTextCentered(h/2+4, "Q quits mid-game")
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", core.Max(g.lives, 0)))

	levelText := fmt.Sprintf("Level: %d", g.level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// mazeOrigin returns the screen position of tile (0,0), centering the board
// under the HUD.
func (g *Game) mazeOrigin(dst *core.Screen) (int, int) {
	ox := (dst.Width() - g.world.Width()) / 2
	if ox < 0 {
		ox = 0
	}
	return ox, 2
}

// renderMaze draws the tile grid: walls, pellets and open floor.
func (g *Game) renderMaze(dst *core.Screen) {
	ox, oy := g.mazeOrigin(dst)
	for ty := 0; ty < g.world.Height(); ty++ {
		for tx := 0; tx < g.world.Width(); tx++ {
			tile := g.world.TileAt(tx, ty)
			if tile == nil {
				continue
			}
			switch tile.Kind {
			case engine.TileWall:
				dst.SetColor(ox+tx, oy+ty, WallChar, core.ColorBlue)
			case engine.TilePellet:
				if !tile.Destroyed {
					dst.SetColor(ox+tx, oy+ty, PelletChar, core.ColorWhite)
				}
			}
		}
	}
}

// renderAgents draws the player and the ghosts on top of the maze. Sub-unit
// positions are rounded to the nearest tile for display.
func (g *Game) renderAgents(dst *core.Screen) {
	ox, oy := g.mazeOrigin(dst)

	for i, gh := range g.world.Ghosts() {
		x, y := displayTile(gh, g.world.Width())
		if gh.Caged {
			dst.SetColor(ox+x, oy+y, CagedChar, core.ColorGray)
			continue
		}
		dst.SetColor(ox+x, oy+y, GhostChar, ghostColors[i%len(ghostColors)])
	}

	p := g.world.Player()
	if p.Active {
		x, y := displayTile(p, g.world.Width())
		dst.SetColor(ox+x, oy+y, PlayerChar, core.ColorBrightYellow)
	}
}

// displayTile rounds an agent's sub-unit position to the nearest tile,
// wrapping x around the board.
func displayTile(a *engine.Agent, width int) (int, int) {
	x := ((a.X+engine.SubUnits/2)/engine.SubUnits + width) % width
	y := (a.Y + engine.SubUnits/2) / engine.SubUnits
	return x, y
}

// renderGameOver draws the terminal overlay box.
func (g *Game) renderGameOver(dst *core.Screen) {
	title := "GAME OVER"
	subtitle := fmt.Sprintf("Score: %d  |  ENTER for title", g.score)

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
