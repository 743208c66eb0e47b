package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soverel/pressable/internal/button"
)

// Update handles incoming messages and advances the player state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if !m.anyLoading() {
			// Stop animating once every button has settled.
			return m, nil
		}
		return m, cmd

	case loadingDoneMsg:
		if msg.index >= 0 && msg.index < len(m.entries) {
			m.entries[msg.index].Loading = false
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j", "tab":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil

	case "enter", " ":
		return m.activateFocused()
	}

	return m, nil
}

// activateFocused delivers an activation gesture to the focused button
// through its presenter. The presenter decides whether the callback fires;
// the player only debounces re-activation while a loading cycle is running.
func (m Model) activateFocused() (tea.Model, tea.Cmd) {
	idx := m.cursor
	entry := m.entries[idx]
	if entry.Loading {
		return m, nil
	}

	activated := false
	b := button.NewButton(entry.CurrentConfig(), func() {
		activated = true
	})
	b.Activate()

	if !activated {
		return m, nil
	}

	m.entries[idx].Activations++
	m.entries[idx].Loading = true
	if m.log != nil {
		m.log.WithFields(map[string]any{"button": entry.Name}).Debug("button activated")
	}

	return m, tea.Batch(
		m.spinner.Tick,
		loadingDoneCmd(idx, m.harness.LoadingDuration()),
	)
}
