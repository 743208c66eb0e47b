package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soverel/pressable/internal/button"
	"github.com/soverel/pressable/internal/config"
	"github.com/soverel/pressable/internal/logger"
	"github.com/soverel/pressable/internal/termrender"
)

// Entry is the caller-owned state record behind one demo button: the base
// configuration plus the flags the player toggles over time. Every frame the
// entry materializes a fresh button.Config; the component itself never holds
// state between renders.
type Entry struct {
	Name    string
	Base    button.Config
	Loading bool

	// Activations counts delivered activation gestures, shown in the footer.
	Activations int
}

// CurrentConfig builds the configuration for this frame.
func (e Entry) CurrentConfig() button.Config {
	return e.Base.WithLoading(e.Loading)
}

// Model is the interactive player: a focusable column of buttons, one per
// style variant, where enter activates the focused button and activation
// starts a timed loading state.
type Model struct {
	entries []Entry
	cursor  int

	spinner  spinner.Model
	renderer *termrender.Renderer
	harness  config.Harness
	log      *logger.Logger

	width    int
	height   int
	quitting bool
}

// NewModel creates the player model from harness settings.
func NewModel(harness config.Harness, log *logger.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	if harness.SpinnerMillis > 0 {
		s.Spinner.FPS = harness.SpinnerInterval()
	}

	return Model{
		entries: demoEntries(),
		spinner: s,
		renderer: termrender.New(termrender.Options{
			Profile:        harness.ColorProfile,
			AvailableWidth: harness.Width,
		}),
		harness: harness,
		log:     log,
	}
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// demoEntries builds one button per style variant plus a disabled and a
// shadowed example.
func demoEntries() []Entry {
	plain := button.New("Plain", "")
	plain.Variant = button.VariantPlain

	bordered := button.New("Bordered", "✎")
	bordered.Variant = button.VariantBordered
	bordered.BorderColor = button.ColorPurple

	filled := button.New("Filled", "♥")
	filled.Background = button.ColorGreen

	gradient := button.New("Gradient", "")
	gradient.Variant = button.VariantGradientLoading

	neumorphic := button.New("Neumorphic", "")
	neumorphic.Variant = button.VariantNeumorphic
	neumorphic.Foreground = button.ColorBlack

	glass := button.New("Glass", "")
	glass.Variant = button.VariantGlass
	glass.BorderWidth = 1

	shadowed := button.New("Shadowed", "").WithShadow(true)

	disabled := button.New("Disabled", "").WithEnabled(false)

	return []Entry{
		{Name: "plain", Base: plain},
		{Name: "bordered", Base: bordered},
		{Name: "filled", Base: filled},
		{Name: "gradient", Base: gradient},
		{Name: "neumorphic", Base: neumorphic},
		{Name: "glass", Base: glass},
		{Name: "shadowed", Base: shadowed},
		{Name: "disabled", Base: disabled},
	}
}

func (m Model) anyLoading() bool {
	for _, e := range m.entries {
		if e.Loading {
			return true
		}
	}
	return false
}
