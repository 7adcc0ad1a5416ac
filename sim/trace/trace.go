package trace

import "fmt"

// SimulationTrace collects dispatch records during a single run.
type SimulationTrace struct {
	Dispatches []DispatchRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		Dispatches: make([]DispatchRecord, 0),
	}
}

// RecordDispatch appends a dispatch record. Records must carry a known
// reason, a positive duration, and start where the previous one ended.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	if !isValidReason(record.Reason) {
		panic(fmt.Sprintf("RecordDispatch: unknown reason %q for %s", record.Reason, record.Owner))
	}
	if record.Duration <= 0 {
		panic(fmt.Sprintf("RecordDispatch: non-positive duration %d for %s", record.Duration, record.Owner))
	}
	if n := st.Len(); n > 0 && record.Clock != st.Dispatches[n-1].End() {
		panic(fmt.Sprintf("RecordDispatch: %s at t=%d does not follow previous end %d",
			record.Owner, record.Clock, st.Dispatches[n-1].End()))
	}
	st.Dispatches = append(st.Dispatches, record)
}

// Len returns the number of recorded dispatches. Safe on nil.
func (st *SimulationTrace) Len() int {
	if st == nil {
		return 0
	}
	return len(st.Dispatches)
}

// Clone returns a deep copy. Safe on nil.
func (st *SimulationTrace) Clone() *SimulationTrace {
	if st == nil {
		return nil
	}
	out := &SimulationTrace{Dispatches: make([]DispatchRecord, len(st.Dispatches))}
	copy(out.Dispatches, st.Dispatches)
	return out
}
