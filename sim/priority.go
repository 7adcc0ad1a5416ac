package sim

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/os-algorithms/schedsim/sim/trace"
)

// PolicyPriorityPreemptive is the registry name of the preemptive priority policy.
const PolicyPriorityPreemptive = "priority"

// priorityBefore orders candidates by priority value (ascending, lower is more
// urgent), then by arrival time (ascending), then by ID (ascending) for determinism.
func priorityBefore(a, b *Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

// selectByPriority returns the most urgent uncompleted process, or nil.
func selectByPriority(candidates []*Process) *Process {
	var best *Process
	for _, p := range candidates {
		if p.Completed() {
			continue
		}
		if best == nil || priorityBefore(p, best) {
			best = p
		}
	}
	return best
}

// sortByArrival returns a copy of procs ordered by (ArrivalTime, ID).
func sortByArrival(procs []*Process) []*Process {
	out := make([]*Process, len(procs))
	copy(out, procs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ArrivalTime != out[j].ArrivalTime {
			return out[i].ArrivalTime < out[j].ArrivalTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// RunPriorityPreemptive simulates preemptive priority scheduling to completion.
//
// The clock starts at the earliest arrival and jumps from event to event: the
// next arrival or the running process's completion, whichever is first. A
// process can only be preempted when something arrives, so the intervals are
// the same as those of a tick-by-tick simulation, and a strictly more urgent
// arrival seals the running interval at its exact arrival time.
func RunPriorityPreemptive(specs []ProcessSpec) (*SimulationResult, error) {
	if err := ValidateProcesses(specs); err != nil {
		return nil, err
	}
	procs := newProcesses(specs)
	arrivals := sortByArrival(procs)
	tl := NewTimelineBuilder()
	tr := trace.NewSimulationTrace()

	clock := arrivals[0].ArrivalTime
	remaining := len(procs)
	arrived := 0

	var current *Process // holder of the open dispatch
	var dispatchStart int64

	logrus.Debugf("priority: starting %d processes at t=%d", len(procs), clock)
	for remaining > 0 {
		for arrived < len(arrivals) && arrivals[arrived].ArrivalTime <= clock {
			arrived++
		}
		nextArrival := int64(math.MaxInt64)
		if arrived < len(arrivals) {
			nextArrival = arrivals[arrived].ArrivalTime
		}

		best := selectByPriority(arrivals[:arrived])
		if best == nil {
			// remaining > 0 and nothing ready, so an arrival is pending
			tl.Record(IdleOwner, clock, nextArrival)
			tr.RecordDispatch(trace.DispatchRecord{Clock: clock, Owner: IdleOwner, Duration: nextArrival - clock, Reason: trace.ReasonIdle})
			logrus.Debugf("priority: idle [%d,%d)", clock, nextArrival)
			clock = nextArrival
			continue
		}

		if best != current {
			if current != nil {
				tr.RecordDispatch(trace.DispatchRecord{Clock: dispatchStart, Owner: current.ID, Duration: clock - dispatchStart, Reason: trace.ReasonPreempted})
				logrus.Debugf("priority: %s preempted by %s at t=%d", current.ID, best.ID, clock)
				current.preempt()
			}
			current = best
			dispatchStart = clock
		}

		end := clock + best.RemainingService
		if nextArrival < end {
			end = nextArrival
		}
		best.serve(clock, end-clock)
		tl.Record(best.ID, clock, end)
		clock = end

		if best.RemainingService == 0 {
			best.complete(clock)
			remaining--
			tr.RecordDispatch(trace.DispatchRecord{Clock: dispatchStart, Owner: best.ID, Duration: clock - dispatchStart, Reason: trace.ReasonCompleted})
			logrus.Debugf("priority: %s completed at t=%d", best.ID, clock)
			current = nil
		}
	}

	return newCPUResult(PolicyPriorityPreemptive, procs, tl.Seal(), tr), nil
}
