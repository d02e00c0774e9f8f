// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Session ties the tick to the game model that scheduled it.
type TickMsg struct {
	Time    time.Time
	Session string
}

// tickCmd schedules the next simulation tick after interval.
// Games advance their own virtual clock by one interval per tick, so a
// slow terminal slows the game down instead of skipping frames.
func tickCmd(interval time.Duration, session string) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Session: session}
	})
}
