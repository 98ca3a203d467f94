package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	theme      string
	logFile    string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tally",
		Short:         "Tally is an animated terminal counter with a theme toggle",
		Long:          `Tally counts up and down in the terminal. Every tenth increase sets off confetti and locks the counter controls until the celebration ends.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			defer app.Close()

			return runWidget(cmd.Context(), app)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML settings file")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Starting theme (light or dark)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newVersionCmd())

	return cmd
}
