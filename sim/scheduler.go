package sim

import (
	"fmt"
	"sort"
)

// Workload is the typed input shared by all schedulers. Each scheduler reads
// only the fields it needs: CPU schedulers read Processes (and Quantum for
// round-robin), the disk scheduler reads Disk.
type Workload struct {
	Processes []ProcessSpec `yaml:"processes" json:"processes"`
	Quantum   int64         `yaml:"quantum" json:"quantum"`
	Disk      DiskWorkload  `yaml:"disk" json:"disk"`
}

// Scheduler runs one allocation policy over a single resource.
// Implementations hold no state between runs; Run is a pure function of w.
type Scheduler interface {
	Name() string
	Resource() Resource
	Run(w Workload) (*SimulationResult, error)
}

// PriorityPreemptiveScheduler runs the most urgent ready process and preempts
// on more urgent arrivals.
type PriorityPreemptiveScheduler struct{}

func (PriorityPreemptiveScheduler) Name() string       { return PolicyPriorityPreemptive }
func (PriorityPreemptiveScheduler) Resource() Resource { return ResourceCPU }
func (PriorityPreemptiveScheduler) Run(w Workload) (*SimulationResult, error) {
	return RunPriorityPreemptive(w.Processes)
}

// RoundRobinScheduler rotates ready processes with a fixed quantum.
type RoundRobinScheduler struct{}

func (RoundRobinScheduler) Name() string       { return PolicyRoundRobin }
func (RoundRobinScheduler) Resource() Resource { return ResourceCPU }
func (RoundRobinScheduler) Run(w Workload) (*SimulationResult, error) {
	return RunRoundRobin(w.Processes, w.Quantum)
}

// CircularScanScheduler orders disk requests with C-SCAN.
type CircularScanScheduler struct{}

func (CircularScanScheduler) Name() string       { return PolicyCircularScan }
func (CircularScanScheduler) Resource() Resource { return ResourceDisk }
func (CircularScanScheduler) Run(w Workload) (*SimulationResult, error) {
	return RunCircularScan(w.Disk)
}

// schedulerAliases maps accepted names, aliases included, to canonical names.
var schedulerAliases = map[string]string{
	PolicyPriorityPreemptive: PolicyPriorityPreemptive,
	"pp":                     PolicyPriorityPreemptive,
	PolicyRoundRobin:         PolicyRoundRobin,
	"rr":                     PolicyRoundRobin,
	PolicyCircularScan:       PolicyCircularScan,
	"cscan":                  PolicyCircularScan,
}

// IsValidScheduler returns true if name is a scheduler name or alias.
func IsValidScheduler(name string) bool {
	_, ok := schedulerAliases[name]
	return ok
}

// CanonicalSchedulerName resolves aliases; unknown names are returned unchanged.
func CanonicalSchedulerName(name string) string {
	if c, ok := schedulerAliases[name]; ok {
		return c
	}
	return name
}

// ValidSchedulerNames returns the sorted canonical scheduler names.
func ValidSchedulerNames() []string {
	seen := make(map[string]bool)
	names := make([]string, 0, 3)
	for _, c := range schedulerAliases {
		if !seen[c] {
			seen[c] = true
			names = append(names, c)
		}
	}
	sort.Strings(names)
	return names
}

// CPUSchedulerNames returns the sorted canonical names of the CPU schedulers.
func CPUSchedulerNames() []string {
	names := make([]string, 0, 2)
	for _, n := range ValidSchedulerNames() {
		if NewScheduler(n).Resource() == ResourceCPU {
			names = append(names, n)
		}
	}
	return names
}

// NewScheduler creates a Scheduler by name or alias.
// Panics on unrecognized names; check with IsValidScheduler first.
func NewScheduler(name string) Scheduler {
	if !IsValidScheduler(name) {
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
	switch CanonicalSchedulerName(name) {
	case PolicyPriorityPreemptive:
		return PriorityPreemptiveScheduler{}
	case PolicyRoundRobin:
		return RoundRobinScheduler{}
	case PolicyCircularScan:
		return CircularScanScheduler{}
	default:
		panic(fmt.Sprintf("unhandled scheduler %q", name))
	}
}
