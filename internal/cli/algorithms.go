package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/seeksim/pkg/sched"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported scheduling algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-8s  %-11s  %s\n", "NAME", "DIRECTIONAL", "DESCRIPTION")
			fmt.Printf("%-8s  %-11s  %s\n", "----", "-----------", "-----------")
			for _, algo := range sched.Algorithms() {
				directional := "no"
				if algo.Directional() {
					directional = "yes"
				}
				fmt.Printf("%-8s  %-11s  %s\n", algo, directional, algo.Description())
			}
			return nil
		},
	}
}
