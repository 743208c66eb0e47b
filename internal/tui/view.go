package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/soverel/pressable/internal/button"
)

// View renders the player: a column of buttons with a focus marker, each
// rebuilt from its entry's current configuration every frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.SetSpinnerFrame(m.spinner.View())

	var b strings.Builder
	b.WriteString(titleStyle.Render("pressable player"))
	b.WriteString("\n")

	for i, entry := range m.entries {
		marker := "  "
		if i == m.cursor {
			marker = focusMarkerStyle.Render("▸ ")
		}

		box := m.renderer.Render(button.Render(entry.CurrentConfig()))
		name := entryNameStyle.Render(fmt.Sprintf("%s (%d)", entry.Name, entry.Activations))

		row := lipgloss.JoinHorizontal(lipgloss.Center, marker, box, "  ", name)
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · enter activate · q quit"))
	return b.String()
}
