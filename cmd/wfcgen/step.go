package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfc/propagator"
)

func newStepCmd() *cobra.Command {
	cfg := &runConfig{}
	cmd := &cobra.Command{
		Use:   "step",
		Short: "run Wave Function Collapse one observation at a time, printing the grid after each",
		RunE: func(cmd *cobra.Command, args []string) error {
			tp, topo, err := build(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for {
				status := tp.Step()
				fmt.Fprintln(out, render(topo, tp.ToTopArray(undecidedSentinel, contradictionSentinel)))
				fmt.Fprintf(out, "status: %s (backtracks: %d)\n\n", status, tp.BacktrackCount())
				if status != propagator.Undecided {
					break
				}
			}

			return nil
		},
	}
	registerCommonFlags(cmd, cfg)

	return cmd
}
