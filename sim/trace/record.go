// Package trace provides dispatch-trace recording for CPU scheduling runs.
// This package has no dependencies on sim/ and stores pure data types.
package trace

// Reason describes why a dispatch slice ended.
type Reason string

const (
	// ReasonCompleted: the process finished during the slice.
	ReasonCompleted Reason = "completed"
	// ReasonPreempted: a more urgent process arrived.
	ReasonPreempted Reason = "preempted"
	// ReasonQuantumExpired: the round-robin quantum ran out.
	ReasonQuantumExpired Reason = "quantum-expired"
	// ReasonIdle: nothing was ready; the slice ends at the next arrival.
	ReasonIdle Reason = "idle"
)

// validReasons maps accepted reason strings.
var validReasons = map[Reason]bool{
	ReasonCompleted:      true,
	ReasonPreempted:      true,
	ReasonQuantumExpired: true,
	ReasonIdle:           true,
}

func isValidReason(r Reason) bool {
	return validReasons[r]
}

// DispatchRecord captures one scheduling decision: Owner held the CPU from
// Clock for Duration ticks, then gave it up for Reason.
type DispatchRecord struct {
	Clock    int64  `yaml:"clock" json:"clock"`
	Owner    string `yaml:"owner" json:"owner"`
	Duration int64  `yaml:"duration" json:"duration"`
	Reason   Reason `yaml:"reason" json:"reason"`
}

// End returns Clock + Duration.
func (r DispatchRecord) End() int64 {
	return r.Clock + r.Duration
}
