package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/soverel/pressable/internal/button"
	"github.com/soverel/pressable/internal/logger"
	"github.com/soverel/pressable/internal/termrender"
)

type showcaseOptions struct {
	fill bool
}

func newShowcaseCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Render every button style variant once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcaseWith(cmd, flags, opts, log)
		},
	}

	cmd.Flags().BoolVar(&opts.fill, "fill", false, "Stretch buttons to the terminal width")

	return cmd
}

func runShowcase(cmd *cobra.Command, flags *rootFlags, log *logger.Logger) error {
	return runShowcaseWith(cmd, flags, &showcaseOptions{}, log)
}

func runShowcaseWith(cmd *cobra.Command, flags *rootFlags, opts *showcaseOptions, log *logger.Logger) error {
	harness, err := loadHarness(flags)
	if err != nil {
		return err
	}

	availWidth := 0
	if opts.fill {
		availWidth = harness.Width
		if availWidth == 0 {
			availWidth = detectWidth()
		}
	}

	if flags.verbose && log != nil {
		log.WithFields(map[string]any{
			"profile": harness.ColorProfile,
			"width":   availWidth,
		}).Debug("rendering showcase")
	}

	r := termrender.New(termrender.Options{
		Profile:        harness.ColorProfile,
		AvailableWidth: availWidth,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Pressable Showcase ===")
	fmt.Fprintln(out)

	for _, demo := range showcaseDemos() {
		fmt.Fprintf(out, "--- %s ---\n", demo.name)
		fmt.Fprintln(out, r.Render(button.Render(demo.cfg)))
		fmt.Fprintln(out)
	}

	return nil
}

type showcaseDemo struct {
	name string
	cfg  button.Config
}

func showcaseDemos() []showcaseDemo {
	plain := button.New("Plain Button", "")
	plain.Variant = button.VariantPlain

	bordered := button.New("Bordered Button", "")
	bordered.Variant = button.VariantBordered
	bordered.BorderColor = button.ColorPurple
	bordered.BorderWidth = 1

	filled := button.New("Filled Button", "♥")
	filled.Background = button.ColorGreen

	gradient := button.New("Gradient Button", "")
	gradient.Variant = button.VariantGradientLoading
	gradient.GradientColors = []lipgloss.Color{button.ColorPurple, button.ColorBlue, button.ColorGreen}

	neumorphic := button.New("Neumorphic Button", "")
	neumorphic.Variant = button.VariantNeumorphic
	neumorphic.Foreground = button.ColorBlack

	glass := button.New("Glass Button", "")
	glass.Variant = button.VariantGlass
	glass.BorderWidth = 1

	loading := button.New("Loading Button", "").WithLoading(true)

	shadowed := button.New("Shadowed Button", "").WithShadow(true)

	disabled := button.New("Disabled Button", "").WithEnabled(false)

	return []showcaseDemo{
		{name: "plain", cfg: plain},
		{name: "bordered", cfg: bordered},
		{name: "filled", cfg: filled},
		{name: "gradient-loading", cfg: gradient},
		{name: "neumorphic", cfg: neumorphic},
		{name: "glass", cfg: glass},
		{name: "loading", cfg: loading},
		{name: "shadowed", cfg: shadowed},
		{name: "disabled", cfg: disabled},
	}
}

func detectWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}
