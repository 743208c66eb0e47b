package termrender

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/soverel/pressable/internal/button"
)

// Layout-unit to terminal-cell conversion. The node tree speaks in abstract
// units; a terminal cell is roughly 6 units wide and 12 units tall, so the
// default padding of 12 becomes two columns and one row.
const (
	unitsPerColumn = 6
	unitsPerRow    = 12
)

const defaultSpinnerFrame = "⠋"

var (
	dropShadowColor = lipgloss.Color("#3A3A3C")
	neumorphicDark  = lipgloss.Color("#8E8E93")
	neumorphicLight = lipgloss.Color("#F2F2F7")
)

// Options configures a Renderer.
type Options struct {
	// Writer is only used for terminal feature detection. Nil means stdout.
	Writer io.Writer

	// Profile forces the color profile: "ascii", "ansi", "ansi256" or
	// "truecolor". Empty or "auto" detects from the writer.
	Profile string

	// SpinnerFrame is the glyph drawn for a progress indicator node.
	SpinnerFrame string

	// AvailableWidth is the width in columns a button without an explicit
	// width stretches to fill. Zero keeps intrinsic sizing.
	AvailableWidth int

	// Backdrop is the assumed terminal background color, used to flatten
	// translucent treatments. Empty means black.
	Backdrop lipgloss.Color
}

// Renderer turns button render trees into styled terminal strings. It is the
// host-toolkit side of the component: the node tree says what to draw, the
// renderer decides how that maps onto cells and ANSI sequences.
type Renderer struct {
	lip          *lipgloss.Renderer
	spinnerFrame string
	backdrop     lipgloss.Color
	availWidth   int
}

// New creates a Renderer from Options.
func New(opts Options) *Renderer {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	lip := lipgloss.NewRenderer(writer)
	if profile, ok := profileFromName(opts.Profile); ok {
		lip.SetColorProfile(profile)
		lip.SetHasDarkBackground(true)
	}

	frame := opts.SpinnerFrame
	if frame == "" {
		frame = defaultSpinnerFrame
	}

	backdrop := opts.Backdrop
	if backdrop == "" {
		backdrop = lipgloss.Color("#000000")
	}

	return &Renderer{
		lip:          lip,
		spinnerFrame: frame,
		backdrop:     backdrop,
		availWidth:   opts.AvailableWidth,
	}
}

func profileFromName(name string) (termenv.Profile, bool) {
	switch name {
	case "ascii":
		return termenv.Ascii, true
	case "ansi":
		return termenv.ANSI, true
	case "ansi256":
		return termenv.ANSI256, true
	case "truecolor":
		return termenv.TrueColor, true
	default:
		return 0, false
	}
}

// SetSpinnerFrame swaps the glyph used for progress indicator nodes. The
// interactive player calls this on every animation tick.
func (r *Renderer) SetSpinnerFrame(frame string) {
	if frame != "" {
		r.spinnerFrame = frame
	}
}

// Button renders a presenter's node tree.
func (r *Renderer) Button(b *button.Button) string {
	return r.Render(b.Node())
}

// Render draws a container node tree as a multi-line terminal string.
func (r *Renderer) Render(n button.ContainerNode) string {
	var box string
	if n.Background.Kind == button.BackgroundGradient {
		box = r.renderGradientBox(n)
	} else {
		box = r.renderUniformBox(n)
	}
	return r.applyOuterShadows(n, box)
}

// segment is a run of content with its own text styling.
type segment struct {
	text  string
	style lipgloss.Style
}

// childSegments flattens the container children into styled runs separated by
// the fixed item spacing.
func (r *Renderer) childSegments(n button.ContainerNode) []segment {
	gap := strings.Repeat(" ", clampCells(scaleX(n.Spacing)))
	segs := make([]segment, 0, 2*len(n.Children))

	for _, child := range n.Children {
		if len(segs) > 0 && gap != "" {
			segs = append(segs, segment{text: gap, style: r.lip.NewStyle()})
		}
		switch c := child.(type) {
		case button.IconNode:
			segs = append(segs, segment{
				text:  c.Glyph,
				style: r.lip.NewStyle().Foreground(dimColor(c.Color, n.Opacity)),
			})
		case button.ProgressNode:
			segs = append(segs, segment{
				text:  r.spinnerFrame,
				style: r.lip.NewStyle().Foreground(dimColor(c.Tint, n.Opacity)),
			})
		case button.LabelNode:
			style := r.lip.NewStyle().Foreground(dimColor(c.Color, n.Opacity))
			switch c.Weight {
			case button.WeightSemibold, button.WeightBold:
				style = style.Bold(true)
			case button.WeightLight:
				style = style.Faint(true)
			}
			segs = append(segs, segment{text: c.Text, style: style})
		}
	}
	return segs
}

// renderUniformBox handles every background except the gradient: one fill
// color (or none) applied through lipgloss padding, sizing and borders.
func (r *Renderer) renderUniformBox(n button.ContainerNode) string {
	segs := r.childSegments(n)
	parts := make([]string, len(segs))
	for i, seg := range segs {
		parts[i] = seg.style.Render(seg.text)
	}
	content := strings.Join(parts, "")

	style := r.lip.NewStyle().Padding(clampCells(scaleY(n.Padding)), clampCells(scaleX(n.Padding)))

	switch n.Background.Kind {
	case button.BackgroundSolid, button.BackgroundNeumorphic:
		style = style.Background(dimColor(n.Background.Color, n.Opacity))
	case button.BackgroundGlass:
		fill := blendOver(n.Background.Color, n.Background.Opacity, r.backdrop)
		style = style.Background(dimColor(fill, n.Opacity))
		if n.Background.Blur {
			// No real blur on a character grid; faint is the closest cue.
			style = style.Faint(true)
		}
	}

	if n.Border.Present {
		stroke := blendOver(n.Border.Color, n.Border.Opacity, r.backdrop)
		style = style.
			Border(r.borderFor(n)).
			BorderForeground(dimColor(stroke, n.Opacity))
	}

	// Absent width fills the available width; explicit width is scaled.
	if n.Width > 0 {
		style = style.Width(scaleX(n.Width))
	} else if r.availWidth > 0 {
		width := r.availWidth
		if n.Border.Present {
			width -= 2
		}
		if width > 0 {
			style = style.Width(width)
		}
	}
	if n.Height > 0 {
		style = style.Height(scaleY(n.Height))
	}
	if n.Opacity < button.FullOpacity {
		style = style.Faint(true)
	}

	return style.Render(content)
}

func (r *Renderer) borderFor(n button.ContainerNode) lipgloss.Border {
	if n.Border.Width >= unitsPerColumn {
		return lipgloss.ThickBorder()
	}
	if n.CornerRadius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// renderGradientBox paints the left-to-right gradient one cell at a time,
// including the padding cells, since lipgloss styles carry only one
// background color.
func (r *Renderer) renderGradientBox(n button.ContainerNode) string {
	segs := r.childSegments(n)

	contentCols := 0
	for _, seg := range segs {
		contentCols += runewidth.StringWidth(seg.text)
	}

	padX := clampCells(scaleX(n.Padding))
	padY := clampCells(scaleY(n.Padding))
	totalCols := contentCols + 2*padX
	if n.Width > 0 {
		if scaled := scaleX(n.Width); scaled > totalCols {
			totalCols = scaled
		}
	} else if r.availWidth > totalCols {
		totalCols = r.availWidth
	}
	if totalCols < 1 {
		totalCols = 1
	}

	stops := make([]lipgloss.Color, len(n.Background.Gradient))
	for i, stop := range n.Background.Gradient {
		stops[i] = dimColor(stop, n.Opacity)
	}
	ramp := gradientRamp(stops, totalCols)

	var blankRow strings.Builder
	r.paintInto(&blankRow, strings.Repeat(" ", totalCols), r.lip.NewStyle(), ramp, 0)
	blank := blankRow.String()

	var content strings.Builder
	col := 0
	col = r.paintInto(&content, strings.Repeat(" ", padX), r.lip.NewStyle(), ramp, col)
	for _, seg := range segs {
		col = r.paintInto(&content, seg.text, seg.style, ramp, col)
	}
	if col < totalCols {
		r.paintInto(&content, strings.Repeat(" ", totalCols-col), r.lip.NewStyle(), ramp, col)
	}

	rows := make([]string, 0, 2*padY+1)
	for i := 0; i < padY; i++ {
		rows = append(rows, blank)
	}
	rows = append(rows, content.String())
	for i := 0; i < padY; i++ {
		rows = append(rows, blank)
	}
	if n.Height > 0 {
		for len(rows) < scaleY(n.Height) {
			rows = append(rows, blank)
		}
	}

	box := strings.Join(rows, "\n")
	if n.Opacity < button.FullOpacity {
		box = r.lip.NewStyle().Faint(true).Render(box)
	}
	return box
}

// paintInto writes each rune of text styled with the ramp color for its
// column, returning the next free column.
func (r *Renderer) paintInto(out *strings.Builder, text string, style lipgloss.Style, ramp []lipgloss.Color, col int) int {
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		idx := col
		if idx >= len(ramp) {
			idx = len(ramp) - 1
		}
		if idx < 0 {
			idx = 0
		}
		out.WriteString(style.Background(ramp[idx]).Render(string(ch)))
		col += width
	}
	return col
}

// applyOuterShadows stacks the neumorphic shadow pair and the drop shadow
// around the finished box. Offsets and radii collapse to single rows on a
// character grid; their direction follows the treatment's offset signs.
func (r *Renderer) applyOuterShadows(n button.ContainerNode, box string) string {
	shadows := n.Background.Shadows
	if shadows == nil && n.ShadowRadius == 0 {
		return box
	}

	width := lipgloss.Width(box)
	if width == 0 {
		return box
	}

	rows := []string{box}

	if shadows != nil {
		// Light shadow offset up-left: a highlight row hugging the top edge.
		highlight := r.lip.NewStyle().
			Foreground(dimColor(neumorphicLight, n.Opacity)).
			Render(strings.Repeat("▁", width))
		rows = append([]string{highlight}, rows...)

		// Dark shadow offset down-right: a shaded row below, nudged right.
		indent := clampCells(scaleX(shadows.DarkOffset.X))
		shade := strings.Repeat(" ", indent) + strings.Repeat("▔", width)
		rows = append(rows, r.lip.NewStyle().
			Foreground(dimColor(neumorphicDark, n.Opacity)).
			Render(shade))
	}

	if n.ShadowRadius > 0 {
		indent := clampCells(scaleX(n.ShadowRadius))
		shade := strings.Repeat(" ", indent) + strings.Repeat("▔", width)
		rows = append(rows, r.lip.NewStyle().
			Foreground(dimColor(dropShadowColor, n.Opacity)).
			Render(shade))
	}

	return strings.Join(rows, "\n")
}

// scaleX converts horizontal layout units to columns, rounding half up.
func scaleX(units int) int {
	if units < 0 {
		return -scaleX(-units)
	}
	return (units + unitsPerColumn/2) / unitsPerColumn
}

// scaleY converts vertical layout units to rows, rounding down so compact
// buttons stay a single line tall.
func scaleY(units int) int {
	if units < 0 {
		return -scaleY(-units)
	}
	return units / unitsPerRow
}

func clampCells(cells int) int {
	if cells < 0 {
		return 0
	}
	return cells
}
