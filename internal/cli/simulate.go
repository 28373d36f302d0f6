package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/seeksim/pkg/model"
	"github.com/me/seeksim/pkg/sched"
)

func newSimulateCmd() *cobra.Command {
	var flags workloadFlags
	var algoName string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scheduling algorithm over a request workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := sched.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}
			wl, err := flags.resolve()
			if err != nil {
				return err
			}

			res, err := sched.New(wl.cfg, wl.requests, wl.head).Simulate(algo, wl.dir)
			if err != nil {
				return err
			}
			logger.Debug("simulation complete",
				"algorithm", res.Algorithm,
				"total_seek", res.TotalSeek,
				"steps", res.Steps(),
			)

			if flags.jsonOut {
				report := model.NewSimulationReport(model.GeometryFor(wl.cfg), wl.requests, wl.head, res)
				return printJSON(report)
			}
			printResult(res)
			return nil
		},
	}

	addWorkloadFlags(cmd, &flags)
	cmd.Flags().StringVar(&algoName, "algorithm", sched.SSTF.String(), "Scheduling algorithm (FCFS, SSTF, SCAN, C-SCAN)")
	return cmd
}

// printResult prints the run the way the interactive simulator always
// displayed it: the movement sequence and the three metrics.
func printResult(res *sched.Result) {
	fmt.Printf("Algorithm:          %s\n", res.Algorithm)
	if res.Algorithm.Directional() {
		fmt.Printf("Direction:          %s\n", res.Direction)
	}
	fmt.Printf("Movement Sequence:  %s\n", sequenceString(res.Sequence))
	fmt.Printf("Total Seek Time:    %.2f tracks\n", res.TotalSeek)
	fmt.Printf("Average Seek Time:  %.2f tracks/request\n", res.AvgSeek)
	fmt.Printf("System Throughput:  %.4f requests/time_unit\n", res.Throughput)
}
