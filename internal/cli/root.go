// Package cli implements the seeksim command line interface. Simulations
// run in-process; no server is involved.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/me/seeksim/internal/logging"
)

var (
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the seeksim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seeksim",
		Short: "seeksim simulates disk-head scheduling algorithms",
		Long: "seeksim replays FCFS, SSTF, SCAN and C-SCAN over a track request workload\n" +
			"and reports the head movement sequence, seek distances and throughput.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newSimulateCmd(),
		newCompareCmd(),
		newBatchCmd(),
		newAlgorithmsCmd(),
	)

	return root
}
