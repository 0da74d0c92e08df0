// Package tui runs games in a terminal through Bubble Tea, locally or over
// SSH: the fixed-rate tick loop, key mapping with held-key latching,
// colour rendering of the screen buffer, and the score logbook.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
