package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/os-algorithms/schedsim/sim"
)

func newPriorityCmd() *cobra.Command {
	var (
		processes []string
		output    string
	)
	cmd := &cobra.Command{
		Use:     "priority",
		Aliases: []string{"pp"},
		Short:   "Run preemptive priority scheduling (lower value is more urgent)",
		Example: "  schedsim priority --process P1:0:5:2 --process P2:1:3:1 --process P3:2:1:3",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := parseProcesses(processes)
			if err != nil {
				return err
			}
			logrus.Infof("Running %s on %d processes", sim.PolicyPriorityPreemptive, len(specs))
			res, err := sim.RunPriorityPreemptive(specs)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, output)
		},
	}
	cmd.Flags().StringArrayVarP(&processes, "process", "p", nil, "Process as ID:arrival:burst:priority (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format (text, json, yaml)")
	_ = cmd.MarkFlagRequired("process")
	return cmd
}

func newRoundRobinCmd() *cobra.Command {
	var (
		processes []string
		quantum   int64
		output    string
	)
	cmd := &cobra.Command{
		Use:     "rr",
		Aliases: []string{"round-robin"},
		Short:   "Run round-robin scheduling with a fixed quantum",
		Example: "  schedsim rr --quantum 2 --process P1:0:5 --process P2:1:3 --process P3:2:1",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := parseProcesses(processes)
			if err != nil {
				return err
			}
			logrus.Infof("Running %s on %d processes, quantum=%d", sim.PolicyRoundRobin, len(specs), quantum)
			res, err := sim.RunRoundRobin(specs, quantum)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, output)
		},
	}
	cmd.Flags().StringArrayVarP(&processes, "process", "p", nil, "Process as ID:arrival:burst[:priority] (repeatable)")
	cmd.Flags().Int64VarP(&quantum, "quantum", "q", 2, "Time quantum in ticks")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format (text, json, yaml)")
	_ = cmd.MarkFlagRequired("process")
	return cmd
}
