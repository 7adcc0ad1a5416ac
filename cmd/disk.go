package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/os-algorithms/schedsim/sim"
)

func newCircularScanCmd() *cobra.Command {
	var (
		w      sim.DiskWorkload
		output string
	)
	cmd := &cobra.Command{
		Use:     "cscan",
		Aliases: []string{"c-scan"},
		Short:   "Order disk track requests with C-SCAN",
		Example: "  schedsim cscan --head 50 --max-cylinder 199 --requests 82,170,43,140,24,16,190",
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Infof("Running %s on %d requests, head=%d", sim.PolicyCircularScan, len(w.Requests), w.HeadStart)
			res, err := sim.RunCircularScan(w)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, output)
		},
	}
	cmd.Flags().Int64Var(&w.HeadStart, "head", 0, "Initial head position")
	cmd.Flags().Int64Var(&w.MaxCylinder, "max-cylinder", 199, "Highest track number")
	cmd.Flags().Int64SliceVar(&w.Requests, "requests", nil, "Comma-separated track requests")
	cmd.Flags().BoolVar(&w.SweepToBoundary, "sweep-to-boundary", false, "Travel to the last cylinder before wrapping")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format (text, json, yaml)")
	return cmd
}
