package button

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBackgroundPerVariant(t *testing.T) {
	cfg := New("Test", "")
	cfg.Background = ColorGreen

	tests := []struct {
		name    string
		variant StyleVariant
		check   func(t *testing.T, bg BackgroundTreatment)
	}{
		{
			name:    "plain is transparent",
			variant: VariantPlain,
			check: func(t *testing.T, bg BackgroundTreatment) {
				assert.Equal(t, BackgroundNone, bg.Kind)
			},
		},
		{
			name:    "bordered is transparent",
			variant: VariantBordered,
			check: func(t *testing.T, bg BackgroundTreatment) {
				assert.Equal(t, BackgroundNone, bg.Kind)
			},
		},
		{
			name:    "filled uses the background color",
			variant: VariantFilled,
			check: func(t *testing.T, bg BackgroundTreatment) {
				assert.Equal(t, BackgroundSolid, bg.Kind)
				assert.Equal(t, ColorGreen, bg.Color)
			},
		},
		{
			name:    "gradient falls back to red and blue",
			variant: VariantGradientLoading,
			check: func(t *testing.T, bg BackgroundTreatment) {
				assert.Equal(t, BackgroundGradient, bg.Kind)
				assert.Equal(t, DefaultGradient(), bg.Gradient)
			},
		},
		{
			name:    "neumorphic is white with a dual shadow",
			variant: VariantNeumorphic,
			check: func(t *testing.T, bg BackgroundTreatment) {
				assert.Equal(t, BackgroundNeumorphic, bg.Kind)
				assert.Equal(t, ColorWhite, bg.Color)
				require.NotNil(t, bg.Shadows)
				assert.Equal(t, Offset{X: 5, Y: 5}, bg.Shadows.DarkOffset)
				assert.Equal(t, Offset{X: -5, Y: -5}, bg.Shadows.LightOffset)
				assert.Equal(t, 5, bg.Shadows.Blur)
			},
		},
		{
			name:    "glass is translucent white with blur",
			variant: VariantGlass,
			check: func(t *testing.T, bg BackgroundTreatment) {
				assert.Equal(t, BackgroundGlass, bg.Kind)
				assert.Equal(t, ColorWhite, bg.Color)
				assert.InDelta(t, 0.2, bg.Opacity, 1e-9)
				assert.True(t, bg.Blur)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ResolveBackground(cfg.WithVariant(tt.variant)))
		})
	}
}

func TestResolveBorderOnlyForBorderedAndGlass(t *testing.T) {
	cfg := New("Test", "")
	cfg.BorderColor = ColorRed
	cfg.BorderWidth = 7

	for _, variant := range Variants() {
		border := ResolveBorder(cfg.WithVariant(variant))

		switch variant {
		case VariantBordered:
			assert.True(t, border.Present)
			assert.Equal(t, ColorRed, border.Color)
			assert.Equal(t, 7, border.Width)
			assert.InDelta(t, 1.0, border.Opacity, 1e-9)
		case VariantGlass:
			assert.True(t, border.Present)
			assert.Equal(t, ColorRed, border.Color)
			assert.Equal(t, 7, border.Width)
			assert.InDelta(t, 0.5, border.Opacity, 1e-9)
		default:
			assert.False(t, border.Present, "variant %s must not draw a border", variant)
			assert.Zero(t, border.Width)
		}
	}
}

func TestBorderColorFallsBackToBackground(t *testing.T) {
	cfg := New("Test", "")
	cfg.Variant = VariantBordered
	cfg.BorderColor = ""
	cfg.Background = ColorPurple

	border := ResolveBorder(cfg)

	require.True(t, border.Present)
	assert.Equal(t, ColorPurple, border.Color)
}

func TestGlassBorderScenario(t *testing.T) {
	cfg := New("Test", "")
	cfg.Variant = VariantGlass
	cfg.BorderWidth = 1
	cfg.BorderColor = ColorBlack

	border := ResolveBorder(cfg)
	bg := ResolveBackground(cfg)

	require.True(t, border.Present)
	assert.Equal(t, ColorBlack, border.Color)
	assert.Equal(t, 1, border.Width)
	assert.InDelta(t, 0.5, border.Opacity, 1e-9)
	assert.Equal(t, BackgroundGlass, bg.Kind)
	assert.Equal(t, ColorWhite, bg.Color)
	assert.True(t, bg.Blur)
}

func TestGradientUsesConfiguredColors(t *testing.T) {
	colors := []lipgloss.Color{ColorGreen, ColorPurple, ColorWhite}
	cfg := New("Test", "")
	cfg.Variant = VariantGradientLoading
	cfg.GradientColors = colors

	bg := ResolveBackground(cfg)

	assert.Equal(t, colors, bg.Gradient)
}

func TestGradientCopyIsDefensive(t *testing.T) {
	cfg := New("Test", "")
	cfg.Variant = VariantGradientLoading
	cfg.GradientColors = []lipgloss.Color{ColorGreen, ColorPurple}

	bg := ResolveBackground(cfg)
	bg.Gradient[0] = ColorBlack

	assert.Equal(t, ColorGreen, cfg.GradientColors[0])
}
