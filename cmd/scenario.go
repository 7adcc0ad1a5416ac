package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/os-algorithms/schedsim/sim"
)

func newRunCmd() *cobra.Command {
	var (
		scenarioPath string
		output       string
	)
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the policy described by a YAML scenario file",
		Example: "  schedsim run --scenario examples/round-robin-scenario-b.yaml --output json",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := sim.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			logrus.Infof("Running scenario %s with policy %s", scenarioPath, sc.Policy)
			res, err := sc.Run()
			if err != nil {
				return err
			}
			logrus.Info("Simulation complete.")
			return writeResult(cmd.OutOrStdout(), res, output)
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "Path to a scenario YAML file")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format (text, json, yaml)")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var (
		scenarioPath string
		quantum      int64
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every CPU policy on a scenario's processes and compare aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := sim.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			w := sc.Workload()
			if cmd.Flags().Changed("quantum") || w.Quantum == 0 {
				w.Quantum = quantum
			}
			results := make([]*sim.SimulationResult, 0, 2)
			for _, name := range sim.CPUSchedulerNames() {
				logrus.Infof("Comparing %s on %d processes", name, len(w.Processes))
				res, err := sim.NewScheduler(name).Run(w)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				results = append(results, res)
			}
			renderComparison(cmd.OutOrStdout(), results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "Path to a scenario YAML file")
	cmd.Flags().Int64VarP(&quantum, "quantum", "q", 2, "Round-robin quantum when the scenario sets none")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}
