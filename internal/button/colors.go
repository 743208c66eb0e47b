package button

import "github.com/charmbracelet/lipgloss"

// Named colors used by the default configuration and treatment fallbacks.
const (
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorBlack  = lipgloss.Color("#000000")
	ColorBlue   = lipgloss.Color("#0A84FF")
	ColorRed    = lipgloss.Color("#FF3B30")
	ColorGreen  = lipgloss.Color("#34C759")
	ColorPurple = lipgloss.Color("#AF52DE")
)

// DefaultGradient returns the two-color fallback used by the gradient-loading
// variant when no gradient colors are supplied.
func DefaultGradient() []lipgloss.Color {
	return []lipgloss.Color{ColorRed, ColorBlue}
}
