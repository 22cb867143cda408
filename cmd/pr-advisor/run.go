package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Poll for open pull requests until interrupted",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		a, err := initializeApp(ctx)
		if err != nil {
			return err
		}
		return a.Run(ctx)
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	runCmd.Flags().String("interval", "", "polling interval such as 30s, 10m or 1h (overrides TIME_SLEEP)")
	runCmd.Flags().String("status-addr", "", "listen address of the status server, e.g. :8080 (overrides STATUS_ADDR)")
	_ = viper.BindPFlag("TIME_SLEEP", runCmd.Flags().Lookup("interval"))
	_ = viper.BindPFlag("STATUS_ADDR", runCmd.Flags().Lookup("status-addr"))
	rootCmd.AddCommand(runCmd)
}
