package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/me/seeksim/pkg/model"
	"github.com/me/seeksim/pkg/sched"
)

func newCompareCmd() *cobra.Command {
	var flags workloadFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm over the same workload and rank them",
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := flags.resolve()
			if err != nil {
				return err
			}

			engine := sched.New(wl.cfg, wl.requests, wl.head)
			geo := model.GeometryFor(wl.cfg)

			reports := make([]model.SimulationReport, 0, len(sched.Algorithms()))
			for _, algo := range sched.Algorithms() {
				res, err := engine.Simulate(algo, wl.dir)
				if err != nil {
					return err
				}
				reports = append(reports, model.NewSimulationReport(geo, wl.requests, wl.head, res))
			}
			comparison := model.NewComparisonReport(geo, wl.requests, wl.head, wl.dir.String(), reports)

			if flags.jsonOut {
				return printJSON(comparison)
			}
			printComparison(comparison)
			return nil
		},
	}

	addWorkloadFlags(cmd, &flags)
	return cmd
}

func printComparison(c model.ComparisonReport) {
	fmt.Printf("%-10s  %12s  %12s  %12s  %6s\n", "ALGORITHM", "TOTAL SEEK", "AVG SEEK", "THROUGHPUT", "STEPS")
	fmt.Printf("%-10s  %12s  %12s  %12s  %6s\n", "---------", "----------", "--------", "----------", "-----")

	bestSeek := 0.0
	for _, r := range c.Reports {
		fmt.Printf("%-10s  %12s  %12s  %12.4f  %6d\n",
			r.Algorithm,
			humanize.CommafWithDigits(r.TotalSeek, 2),
			humanize.CommafWithDigits(r.AvgSeek, 2),
			r.Throughput,
			r.Steps,
		)
		if r.Algorithm == c.Best {
			bestSeek = r.TotalSeek
		}
	}

	fmt.Printf("\nBest by total seek: %s (%s tracks)\n", c.Best, humanize.CommafWithDigits(bestSeek, 2))
}
