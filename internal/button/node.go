package button

import "github.com/charmbracelet/lipgloss"

// Fixed presentation parameters of the rendered container.
const (
	// ItemSpacing is the horizontal gap between icon, progress indicator and
	// label, in layout units.
	ItemSpacing = 8

	// DropShadowRadius is the container shadow radius when the shadow flag is
	// set.
	DropShadowRadius = 4

	// DisabledOpacity dims the whole container when the button is disabled.
	DisabledOpacity = 0.6

	// FullOpacity is the enabled-state container opacity.
	FullOpacity = 1.0

	// ProgressScale shrinks the progress indicator relative to its natural
	// size.
	ProgressScale = 0.8
)

// Node is a host-toolkit-agnostic piece of the renderable description a
// presenter emits. The set of node types is closed.
type Node interface {
	node()
}

// ContainerNode is the root of a button's render tree: a padded, backgrounded,
// corner-rounded, optionally shadowed and bordered horizontal arrangement of
// its children.
type ContainerNode struct {
	Background BackgroundTreatment
	Border     BorderTreatment

	// Padding and CornerRadius are pass-through layout units.
	Padding      int
	CornerRadius int

	// Width and Height are explicit sizes; zero means fill available width /
	// intrinsic height.
	Width  int
	Height int

	// Opacity is 1.0 when enabled and DisabledOpacity otherwise.
	Opacity float64

	// ShadowRadius is DropShadowRadius when the shadow flag is set, else 0.
	ShadowRadius int

	// Spacing is the fixed horizontal gap between children.
	Spacing int

	// Children are ordered: optional icon, optional progress indicator, label.
	Children []Node
}

// IconNode is an optional leading glyph.
type IconNode struct {
	Glyph string
	Color lipgloss.Color
	Size  int
}

// ProgressNode is the circular progress indicator shown while loading.
type ProgressNode struct {
	Tint  lipgloss.Color
	Scale float64
}

// LabelNode is the button text.
type LabelNode struct {
	Text   string
	Color  lipgloss.Color
	Size   int
	Weight FontWeight
}

func (ContainerNode) node() {}
func (IconNode) node()      {}
func (ProgressNode) node()  {}
func (LabelNode) node()     {}
