package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/os-algorithms/schedsim/sim/trace"
)

// PolicyRoundRobin is the registry name of the round-robin policy.
const PolicyRoundRobin = "round-robin"

// RunRoundRobin simulates round-robin scheduling with a fixed quantum.
//
// Processes are admitted to a FIFO ready queue in (ArrivalTime, ID) order.
// After a slice that does not finish its process, processes that arrived
// during the slice are admitted before the preempted process goes back to the
// tail of the queue.
func RunRoundRobin(specs []ProcessSpec, quantum int64) (*SimulationResult, error) {
	if err := ValidateProcesses(specs); err != nil {
		return nil, err
	}
	if err := ValidateQuantum(quantum); err != nil {
		return nil, err
	}
	procs := newProcesses(specs)
	adm := &admitter{procs: sortByArrival(procs)}
	rq := &ReadyQueue{}
	tl := NewTimelineBuilder()
	tr := trace.NewSimulationTrace()

	clock := adm.nextArrival()
	remaining := len(procs)

	logrus.Debugf("round-robin: starting %d processes at t=%d, quantum=%d", len(procs), clock, quantum)
	for remaining > 0 {
		adm.admit(rq, clock)
		if rq.Len() == 0 {
			next := adm.nextArrival()
			tl.Record(IdleOwner, clock, next)
			tr.RecordDispatch(trace.DispatchRecord{Clock: clock, Owner: IdleOwner, Duration: next - clock, Reason: trace.ReasonIdle})
			logrus.Debugf("round-robin: idle [%d,%d)", clock, next)
			clock = next
			adm.admit(rq, clock)
		}

		p := rq.Dequeue()
		slice := min(quantum, p.RemainingService)
		start := clock
		p.serve(start, slice)
		tl.Record(p.ID, start, start+slice)
		clock += slice

		if p.RemainingService == 0 {
			p.complete(clock)
			remaining--
			tr.RecordDispatch(trace.DispatchRecord{Clock: start, Owner: p.ID, Duration: slice, Reason: trace.ReasonCompleted})
			logrus.Debugf("round-robin: %s completed at t=%d", p.ID, clock)
			continue
		}

		// arrivals during the slice go ahead of the preempted process
		adm.admit(rq, clock)
		p.preempt()
		rq.Enqueue(p)
		tr.RecordDispatch(trace.DispatchRecord{Clock: start, Owner: p.ID, Duration: slice, Reason: trace.ReasonQuantumExpired})
		logrus.Debugf("round-robin: %s quantum expired at t=%d, queue=%v", p.ID, clock, rq.IDs())
	}

	return newCPUResult(PolicyRoundRobin, procs, tl.Seal(), tr), nil
}
