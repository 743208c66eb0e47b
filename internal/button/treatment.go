package button

import "github.com/charmbracelet/lipgloss"

// BackgroundKind enumerates the background treatments a variant can resolve to.
type BackgroundKind int

const (
	BackgroundNone BackgroundKind = iota
	BackgroundSolid
	BackgroundGradient
	BackgroundNeumorphic
	BackgroundGlass
)

// Fixed treatment parameters shared by every resolution.
const (
	glassFillOpacity   = 0.2
	glassBorderOpacity = 0.5
	neumorphicOffset   = 5
	neumorphicBlur     = 5
)

// Offset is a two-dimensional shadow displacement in layout units.
type Offset struct {
	X int
	Y int
}

// ShadowPair describes the neumorphic dual shadows: a dark shadow displaced
// toward the bottom right and a light one toward the top left, sharing one
// blur radius.
type ShadowPair struct {
	DarkOffset  Offset
	LightOffset Offset
	Blur        int
}

// BackgroundTreatment is the resolved background of a container. Exactly the
// fields relevant to Kind are populated; the rest stay zero.
type BackgroundTreatment struct {
	Kind BackgroundKind

	// Color is the fill for solid, neumorphic and glass backgrounds.
	Color lipgloss.Color

	// Gradient holds the left-to-right stops for gradient backgrounds.
	Gradient []lipgloss.Color

	// Opacity applies to the glass fill.
	Opacity float64

	// Blur marks the glass blur treatment.
	Blur bool

	// Shadows carries the neumorphic shadow pair.
	Shadows *ShadowPair
}

// BorderTreatment is the resolved border of a container. Present is false for
// every variant except bordered and glass, regardless of the configured border
// color and width.
type BorderTreatment struct {
	Present bool
	Color   lipgloss.Color
	Width   int
	Opacity float64
}

// ResolveBackground maps a configuration to its background treatment. It is a
// pure function of the style variant and the color fields it reads.
func ResolveBackground(cfg Config) BackgroundTreatment {
	switch cfg.Variant {
	case VariantFilled:
		return BackgroundTreatment{
			Kind:  BackgroundSolid,
			Color: cfg.Background,
		}
	case VariantGradientLoading:
		return BackgroundTreatment{
			Kind:     BackgroundGradient,
			Gradient: cfg.gradient(),
		}
	case VariantNeumorphic:
		return BackgroundTreatment{
			Kind:  BackgroundNeumorphic,
			Color: ColorWhite,
			Shadows: &ShadowPair{
				DarkOffset:  Offset{X: neumorphicOffset, Y: neumorphicOffset},
				LightOffset: Offset{X: -neumorphicOffset, Y: -neumorphicOffset},
				Blur:        neumorphicBlur,
			},
		}
	case VariantGlass:
		return BackgroundTreatment{
			Kind:    BackgroundGlass,
			Color:   ColorWhite,
			Opacity: glassFillOpacity,
			Blur:    true,
		}
	default:
		// plain and bordered draw no background.
		return BackgroundTreatment{Kind: BackgroundNone}
	}
}

// ResolveBorder maps a configuration to its border treatment. Only the
// bordered and glass variants produce a border; the stroke color falls back to
// the background color when no border color is set.
func ResolveBorder(cfg Config) BorderTreatment {
	switch cfg.Variant {
	case VariantBordered:
		return BorderTreatment{
			Present: true,
			Color:   cfg.strokeColor(),
			Width:   cfg.BorderWidth,
			Opacity: 1.0,
		}
	case VariantGlass:
		return BorderTreatment{
			Present: true,
			Color:   cfg.strokeColor(),
			Width:   cfg.BorderWidth,
			Opacity: glassBorderOpacity,
		}
	default:
		return BorderTreatment{}
	}
}
