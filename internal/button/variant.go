package button

// StyleVariant enumerates the fixed set of visual treatments a button may use.
type StyleVariant int

const (
	VariantPlain StyleVariant = iota
	VariantBordered
	VariantFilled
	VariantGradientLoading
	VariantNeumorphic
	VariantGlass
)

// String returns the lowercase name of the variant.
func (v StyleVariant) String() string {
	switch v {
	case VariantPlain:
		return "plain"
	case VariantBordered:
		return "bordered"
	case VariantFilled:
		return "filled"
	case VariantGradientLoading:
		return "gradient-loading"
	case VariantNeumorphic:
		return "neumorphic"
	case VariantGlass:
		return "glass"
	default:
		return "unknown"
	}
}

// Variants lists every style variant in declaration order.
func Variants() []StyleVariant {
	return []StyleVariant{
		VariantPlain,
		VariantBordered,
		VariantFilled,
		VariantGradientLoading,
		VariantNeumorphic,
		VariantGlass,
	}
}

// FontWeight is an ordinal weight token applied to the label.
type FontWeight int

const (
	WeightLight FontWeight = iota
	WeightRegular
	WeightMedium
	WeightSemibold
	WeightBold
)

// String returns the lowercase name of the weight.
func (w FontWeight) String() string {
	switch w {
	case WeightLight:
		return "light"
	case WeightRegular:
		return "regular"
	case WeightMedium:
		return "medium"
	case WeightSemibold:
		return "semibold"
	case WeightBold:
		return "bold"
	default:
		return "unknown"
	}
}
