// Package workload generates random process sets for the CPU schedulers.
// Generation is deterministic given the same spec and seed.
package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/os-algorithms/schedsim/sim"
)

// GenerateProcesses creates Count processes from spec, ordered by arrival.
// The first process arrives at tick 0; IDs are IDPrefix followed by 1..Count.
func GenerateProcesses(spec *GeneratorSpec) ([]sim.ProcessSpec, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}
	bursts, err := NewBurstSampler(spec.Burst)
	if err != nil {
		return nil, fmt.Errorf("burst distribution: %w", err)
	}
	arrivals := NewArrivalSampler(spec.Arrival)

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	arrivalRNG := rng.ForSubsystem(sim.SubsystemArrival)
	burstRNG := rng.ForSubsystem(sim.SubsystemBurst)
	priorityRNG := rng.ForSubsystem(sim.SubsystemPriority)

	prefix := spec.IDPrefix
	if prefix == "" {
		prefix = "P"
	}
	priorities := spec.Priority.Max - spec.Priority.Min + 1

	procs := make([]sim.ProcessSpec, spec.Count)
	var clock int64
	for i := range procs {
		if i > 0 {
			clock += arrivals.SampleIAT(arrivalRNG)
		}
		procs[i] = sim.ProcessSpec{
			ID:          fmt.Sprintf("%s%d", prefix, i+1),
			ArrivalTime: clock,
			BurstTime:   bursts.Sample(burstRNG),
			Priority:    spec.Priority.Min + priorityRNG.Int63n(priorities),
		}
	}
	logrus.Debugf("workload: generated %d processes over [0,%d], key=%d", len(procs), clock, rng.Key())
	return procs, nil
}
