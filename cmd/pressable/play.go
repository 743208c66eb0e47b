package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/soverel/pressable/internal/logger"
	"github.com/soverel/pressable/internal/tui"
)

func newPlayCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the interactive button player",
		RunE: func(cmd *cobra.Command, args []string) error {
			harness, err := loadHarness(flags)
			if err != nil {
				return err
			}

			level := harness.LogLevel
			if flags.verbose {
				level = "debug"
			}
			playLog, err := logger.New(logger.Options{Level: level, Pretty: true})
			if err != nil {
				return fmt.Errorf("create player logger: %w", err)
			}

			model := tui.NewModel(harness, playLog)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("player failed: %w", err)
			}
			return nil
		},
	}

	return cmd
}
