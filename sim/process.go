// Defines the Process entity scheduled on the CPU and the DiskRequest entity
// serviced by the disk head.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process within one run.
type ProcessState string

const (
	StateWaiting   ProcessState = "waiting"
	StateRunning   ProcessState = "running"
	StateCompleted ProcessState = "completed"
)

// ProcessSpec is the caller-supplied description of a CPU process.
// It is never modified by a run.
type ProcessSpec struct {
	ID          string `yaml:"id" json:"id"`
	ArrivalTime int64  `yaml:"arrival" json:"arrival"`
	BurstTime   int64  `yaml:"burst" json:"burst"`
	Priority    int64  `yaml:"priority" json:"priority"` // lower = more urgent
}

// Process models a single process's lifecycle during one simulation run.
// A run builds fresh Process values from ProcessSpecs, mutates them while
// simulating, and freezes them on completion.
type Process struct {
	ProcessSpec

	State            ProcessState
	RemainingService int64 // ticks of service still owed

	started      bool
	FirstRunTime int64 // clock at the first dispatch

	CompletionTime int64
	TurnaroundTime int64 // CompletionTime - ArrivalTime
	WaitingTime    int64 // TurnaroundTime - BurstTime
}

func newProcess(spec ProcessSpec) *Process {
	return &Process{
		ProcessSpec:      spec,
		State:            StateWaiting,
		RemainingService: spec.BurstTime,
	}
}

func newProcesses(specs []ProcessSpec) []*Process {
	procs := make([]*Process, len(specs))
	for i, s := range specs {
		procs[i] = newProcess(s)
	}
	return procs
}

// Completed reports whether the process has received all of its service.
func (p *Process) Completed() bool {
	return p.State == StateCompleted
}

// serve gives the process d ticks of service starting at clock.
func (p *Process) serve(clock, d int64) {
	if p.Completed() {
		panic(fmt.Sprintf("serve: process %s already completed", p.ID))
	}
	if d <= 0 || d > p.RemainingService {
		panic(fmt.Sprintf("serve: process %s cannot take %d ticks with %d remaining", p.ID, d, p.RemainingService))
	}
	if !p.started {
		p.started = true
		p.FirstRunTime = clock
	}
	p.State = StateRunning
	p.RemainingService -= d
}

// complete freezes the derived metrics at the given clock.
func (p *Process) complete(clock int64) {
	if p.Completed() {
		panic(fmt.Sprintf("complete: process %s already completed", p.ID))
	}
	if p.RemainingService != 0 {
		panic(fmt.Sprintf("complete: process %s still owes %d ticks", p.ID, p.RemainingService))
	}
	p.State = StateCompleted
	p.CompletionTime = clock
	p.TurnaroundTime = clock - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

// preempt returns a running process to the waiting state.
func (p *Process) preempt() {
	if p.State == StateRunning {
		p.State = StateWaiting
	}
}

func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, State: %s, Remaining: %d, ArrivalTime: %d)", p.ID, p.State, p.RemainingService, p.ArrivalTime)
}

// DiskRequest is a pending request for one track. The C-SCAN scheduler only
// reorders these.
type DiskRequest struct {
	TrackPosition int64
}
