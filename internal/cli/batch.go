package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/me/seeksim/internal/scenario"
)

func newBatchCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "batch <scenario-file>",
		Short: "Run every scenario in a YAML workload file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := scenario.Load(args[0])
			if err != nil {
				return fmt.Errorf("load scenarios: %w", err)
			}
			logger.Debug("scenario file loaded", "path", args[0], "scenarios", len(file.Scenarios))

			results, err := file.Run()
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(results)
			}
			printBatch(results)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON instead of human-readable text")
	return cmd
}

func printBatch(results []scenario.Result) {
	if len(results) == 0 {
		fmt.Println("No scenarios to run.")
		return
	}

	fmt.Printf("%-20s  %-10s  %12s  %12s  %12s  %6s\n", "SCENARIO", "ALGORITHM", "TOTAL SEEK", "AVG SEEK", "THROUGHPUT", "STEPS")
	fmt.Printf("%-20s  %-10s  %12s  %12s  %12s  %6s\n", "--------", "---------", "----------", "--------", "----------", "-----")
	for _, r := range results {
		fmt.Printf("%-20s  %-10s  %12s  %12s  %12.4f  %6d\n",
			r.Scenario,
			r.Report.Algorithm,
			humanize.CommafWithDigits(r.Report.TotalSeek, 2),
			humanize.CommafWithDigits(r.Report.AvgSeek, 2),
			r.Report.Throughput,
			r.Report.Steps,
		)
	}
}
