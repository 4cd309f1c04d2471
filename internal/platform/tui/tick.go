// Package tui provides the Bubble Tea integration for the chomp game.
// It handles the terminal UI loop, input mapping, and score persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg paces the render loop. The simulation runs at its own fixed
// rate inside the game; the model only measures real time between frames.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// requested render rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
