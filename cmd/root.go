package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/os-algorithms/schedsim/sim"
)

var logLevel string // Log verbosity level

// newRootCmd builds the command tree. Commands are built fresh on every call
// so that flag state never leaks between executions.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "schedsim",
		Short:         "Simulator for CPU and disk scheduling policies",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %s", logLevel)
			}
			logrus.SetLevel(level)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(
		newPriorityCmd(),
		newRoundRobinCmd(),
		newCircularScanCmd(),
		newRunCmd(),
		newCompareCmd(),
		newGenerateCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// Execute runs the CLI root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// parseProcess parses "ID:arrival:burst[:priority]".
func parseProcess(s string) (sim.ProcessSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return sim.ProcessSpec{}, fmt.Errorf("process %q: want ID:arrival:burst[:priority]", s)
	}
	spec := sim.ProcessSpec{ID: parts[0]}
	fields := []*int64{&spec.ArrivalTime, &spec.BurstTime, &spec.Priority}
	names := []string{"arrival", "burst", "priority"}
	for i, p := range parts[1:] {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return sim.ProcessSpec{}, fmt.Errorf("process %q: bad %s: %w", s, names[i], err)
		}
		*fields[i] = v
	}
	return spec, nil
}

func parseProcesses(args []string) ([]sim.ProcessSpec, error) {
	specs := make([]sim.ProcessSpec, 0, len(args))
	for _, a := range args {
		spec, err := parseProcess(a)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
