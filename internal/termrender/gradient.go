package termrender

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// gradientRamp expands the gradient stops into one color per column, blending
// left to right in Luv space. Stops that fail to parse as hex colors fall back
// to black so a malformed stop degrades visually instead of failing.
func gradientRamp(stops []lipgloss.Color, columns int) []lipgloss.Color {
	if columns <= 0 {
		return nil
	}

	parsed := make([]colorful.Color, len(stops))
	for i, stop := range stops {
		c, err := colorful.Hex(string(stop))
		if err != nil {
			c = colorful.Color{}
		}
		parsed[i] = c
	}

	ramp := make([]lipgloss.Color, columns)
	if len(parsed) == 0 {
		for i := range ramp {
			ramp[i] = lipgloss.Color("#000000")
		}
		return ramp
	}
	if len(parsed) == 1 || columns == 1 {
		for i := range ramp {
			ramp[i] = lipgloss.Color(parsed[0].Clamped().Hex())
		}
		return ramp
	}

	segments := len(parsed) - 1
	for i := range ramp {
		t := float64(i) / float64(columns-1) * float64(segments)
		seg := int(t)
		if seg >= segments {
			seg = segments - 1
		}
		local := t - float64(seg)
		blended := parsed[seg].BlendLuv(parsed[seg+1], local)
		ramp[i] = lipgloss.Color(blended.Clamped().Hex())
	}
	return ramp
}
