package button

import "github.com/charmbracelet/lipgloss"

// Config is the immutable value object describing every visual and behavioral
// parameter of a single button render. A Config is built immediately before a
// render pass and discarded with it; presenting a new state (loading, disabled)
// means constructing a new Config and rendering again. Nothing mutates a Config
// after construction.
//
// Absent optional fields use zero values: "" for Icon and BorderColor, 0 for
// Width and Height, nil for GradientColors. Each is resolved to its documented
// fallback at render time.
type Config struct {
	// Label is the button text. It is the only mandatory field.
	Label string

	// Icon is an optional leading glyph rendered before the label.
	Icon string

	// Variant selects the background and border treatment.
	Variant StyleVariant

	// Foreground colors the label and icon.
	Foreground lipgloss.Color

	// Background is the fill color for the filled variant and the stroke
	// fallback when BorderColor is absent.
	Background lipgloss.Color

	// BorderColor strokes the bordered and glass variants. Empty means
	// "fall back to Background".
	BorderColor lipgloss.Color

	// BorderWidth is the stroke width in layout units.
	BorderWidth int `validate:"gte=0"`

	// FontSize is the label size in layout units.
	FontSize int `validate:"gt=0"`

	// FontWeight is the label weight token.
	FontWeight FontWeight

	// Padding is the uniform inner padding in layout units.
	Padding int `validate:"gte=0"`

	// CornerRadius rounds the container corners. Zero means square.
	CornerRadius int `validate:"gte=0"`

	// Width and Height pin the container size in layout units. Zero means
	// fill available width / intrinsic height.
	Width  int `validate:"gte=0"`
	Height int `validate:"gte=0"`

	// Enabled gates activation and full-opacity presentation.
	Enabled bool

	// Shadow applies the container drop shadow.
	Shadow bool

	// Loading inserts a progress indicator alongside icon and label.
	Loading bool

	// ProgressTint colors the progress indicator.
	ProgressTint lipgloss.Color

	// GradientColors feed the gradient-loading variant, left to right.
	// Nil falls back to DefaultGradient.
	GradientColors []lipgloss.Color
}

// DefaultConfig returns the canonical baseline configuration. Convenience
// constructors override only label and icon on top of it.
func DefaultConfig() Config {
	return Config{
		Variant:      VariantFilled,
		Foreground:   ColorWhite,
		Background:   ColorBlue,
		BorderWidth:  2,
		FontSize:     16,
		FontWeight:   WeightSemibold,
		Padding:      12,
		CornerRadius: 8,
		Enabled:      true,
		ProgressTint: ColorWhite,
	}
}

// New is the label+icon shorthand: every other field comes from DefaultConfig.
func New(label, icon string) Config {
	cfg := DefaultConfig()
	cfg.Label = label
	cfg.Icon = icon
	return cfg
}

// WithVariant returns a copy of cfg using the given variant.
func (c Config) WithVariant(variant StyleVariant) Config {
	c.Variant = variant
	return c
}

// WithEnabled returns a copy of cfg with the enabled flag set.
func (c Config) WithEnabled(enabled bool) Config {
	c.Enabled = enabled
	return c
}

// WithLoading returns a copy of cfg with the loading flag set.
func (c Config) WithLoading(loading bool) Config {
	c.Loading = loading
	return c
}

// WithShadow returns a copy of cfg with the shadow flag set.
func (c Config) WithShadow(shadow bool) Config {
	c.Shadow = shadow
	return c
}

// gradient resolves the gradient color list, applying the two-color fallback.
func (c Config) gradient() []lipgloss.Color {
	if len(c.GradientColors) == 0 {
		return DefaultGradient()
	}
	colors := make([]lipgloss.Color, len(c.GradientColors))
	copy(colors, c.GradientColors)
	return colors
}

// strokeColor resolves the border stroke color, falling back to Background
// when BorderColor is absent.
func (c Config) strokeColor() lipgloss.Color {
	if c.BorderColor != "" {
		return c.BorderColor
	}
	return c.Background
}
