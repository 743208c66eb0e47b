package termrender

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// dimColor multiplies a hex color toward black by the given opacity.
// Non-hex colors are returned unchanged.
func dimColor(c lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1.0 {
		return c
	}
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	dimmed := colorful.Color{
		R: parsed.R * opacity,
		G: parsed.G * opacity,
		B: parsed.B * opacity,
	}
	return lipgloss.Color(dimmed.Clamped().Hex())
}

// blendOver composites a hex color at the given alpha over a hex backdrop,
// approximating translucency on a terminal that has no alpha channel.
func blendOver(c lipgloss.Color, alpha float64, backdrop lipgloss.Color) lipgloss.Color {
	top, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bottom, err := colorful.Hex(string(backdrop))
	if err != nil {
		return c
	}
	mixed := colorful.Color{
		R: top.R*alpha + bottom.R*(1-alpha),
		G: top.G*alpha + bottom.G*(1-alpha),
		B: top.B*alpha + bottom.B*(1-alpha),
	}
	return lipgloss.Color(mixed.Clamped().Hex())
}
