// Package tui runs the game in a terminal with Bubble Tea, locally or over SSH.
// It owns the frame loop, key handling, and the conversion of the game surface
// into terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate approximates a display refresh rate.
const DefaultTickRate = 60

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd schedules the next frame.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
