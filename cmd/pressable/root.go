package main

import (
	"github.com/spf13/cobra"

	"github.com/soverel/pressable/internal/config"
	"github.com/soverel/pressable/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pressable",
		Short:         "Pressable renders declarative buttons for terminal UIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, show the static showcase.
			return runShowcase(cmd, flags, log)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a harness config file")

	cmd.AddCommand(newShowcaseCmd(flags, log))
	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadHarness resolves the harness settings from the --config flag, falling
// back to the built-in defaults.
func loadHarness(flags *rootFlags) (config.Harness, error) {
	if flags.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Parse(flags.configPath)
	if err != nil {
		return config.Harness{}, err
	}
	return *cfg, nil
}
