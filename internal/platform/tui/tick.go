// Package tui provides the Bubble Tea host for the flappy simulation.
// It handles the terminal loop, input latching, the world-to-cell
// projection, and rendering; the simulation itself lives in the game
// package and never sees the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation frame. Its value is the send time, which
// the model uses to measure the real elapsed delta.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
