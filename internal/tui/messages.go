package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadingDoneMsg resets an entry's loading state after the harness delay.
type loadingDoneMsg struct {
	index int
}

func loadingDoneCmd(index int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return loadingDoneMsg{index: index}
	})
}
