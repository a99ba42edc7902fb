package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cfg := &runConfig{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "run Wave Function Collapse to completion and print the grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			tp, topo, err := build(cfg)
			if err != nil {
				return err
			}

			status := tp.Run(0)
			fmt.Fprintln(cmd.OutOrStdout(), render(topo, tp.ToTopArray(undecidedSentinel, contradictionSentinel)))
			fmt.Fprintf(cmd.OutOrStdout(), "status: %s (backtracks: %d)\n", status, tp.BacktrackCount())

			return nil
		},
	}
	registerCommonFlags(cmd, cfg)

	return cmd
}
