package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches    int            `yaml:"total_dispatches" json:"total_dispatches"`
	Preemptions        int            `yaml:"preemptions" json:"preemptions"`
	QuantumExpirations int            `yaml:"quantum_expirations" json:"quantum_expirations"`
	Completions        int            `yaml:"completions" json:"completions"`
	IdleSlices         int            `yaml:"idle_slices" json:"idle_slices"`
	ContextSwitches    int            `yaml:"context_switches" json:"context_switches"`
	DispatchesPerOwner map[string]int `yaml:"dispatches_per_owner" json:"dispatches_per_owner"` // idle slices excluded
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
//
// A context switch is counted whenever the CPU passes from one process to a
// different process, with any idle slices in between ignored.
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchesPerOwner: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = st.Len()
	prev := ""
	for _, d := range st.Dispatches {
		switch d.Reason {
		case ReasonPreempted:
			summary.Preemptions++
		case ReasonQuantumExpired:
			summary.QuantumExpirations++
		case ReasonCompleted:
			summary.Completions++
		case ReasonIdle:
			summary.IdleSlices++
			continue
		}
		summary.DispatchesPerOwner[d.Owner]++
		if prev != "" && prev != d.Owner {
			summary.ContextSwitches++
		}
		prev = d.Owner
	}

	return summary
}
