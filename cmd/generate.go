package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/os-algorithms/schedsim/sim"
	"github.com/os-algorithms/schedsim/sim/workload"
)

func newGenerateCmd() *cobra.Command {
	var (
		specPath string
		seed     int64
		policy   string
		quantum  int64
	)
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate a random process scenario from a generator spec",
		Example: "  schedsim generate --spec examples/generator.yaml --policy rr --quantum 3 > scenario.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := workload.LoadGeneratorSpec(specPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				spec.Seed = seed
			}
			if !sim.IsValidScheduler(policy) || sim.NewScheduler(policy).Resource() != sim.ResourceCPU {
				return fmt.Errorf("%w: --policy must be one of %v", sim.ErrInvalidInput, sim.CPUSchedulerNames())
			}
			procs, err := workload.GenerateProcesses(spec)
			if err != nil {
				return err
			}
			sc := sim.Scenario{Policy: sim.CanonicalSchedulerName(policy), Processes: procs}
			if sc.Policy == sim.PolicyRoundRobin {
				sc.Quantum = quantum
			}
			logrus.Infof("Generated %d processes with seed %d", len(procs), spec.Seed)
			data, err := yaml.Marshal(sc)
			if err != nil {
				return fmt.Errorf("encoding scenario: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&specPath, "spec", "s", "", "Path to a generator spec YAML file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Override the spec's seed")
	cmd.Flags().StringVar(&policy, "policy", sim.PolicyPriorityPreemptive, "CPU policy written into the scenario")
	cmd.Flags().Int64VarP(&quantum, "quantum", "q", 2, "Round-robin quantum written into the scenario")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}
