package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every validation failure. Callers test for it
// with errors.Is and show the wrapped message, which names the broken rule.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ValidateProcesses checks the structural rules every CPU policy relies on.
func ValidateProcesses(specs []ProcessSpec) error {
	if len(specs) == 0 {
		return invalid("at least one process is required")
	}
	seen := make(map[string]bool, len(specs))
	var lastArrival, totalBurst int64
	for i, s := range specs {
		if s.ID == "" {
			return invalid("process %d: id is required", i)
		}
		if s.ID == IdleOwner {
			return invalid("process %d: id %q is reserved", i, IdleOwner)
		}
		if seen[s.ID] {
			return invalid("duplicate process id %q", s.ID)
		}
		seen[s.ID] = true
		if s.ArrivalTime < 0 {
			return invalid("process %s: arrival time must be non-negative, got %d", s.ID, s.ArrivalTime)
		}
		if s.BurstTime <= 0 {
			return invalid("process %s: burst time must be positive, got %d", s.ID, s.BurstTime)
		}
		if s.ArrivalTime > math.MaxInt64-s.BurstTime {
			return invalid("process %s: arrival %d + burst %d overflows the clock", s.ID, s.ArrivalTime, s.BurstTime)
		}
		if totalBurst > math.MaxInt64-s.BurstTime {
			return invalid("total burst time overflows the clock")
		}
		totalBurst += s.BurstTime
		lastArrival = max(lastArrival, s.ArrivalTime)
	}
	// every run finishes by the last arrival plus all service
	if lastArrival > math.MaxInt64-totalBurst {
		return invalid("last arrival %d + total burst %d overflows the clock", lastArrival, totalBurst)
	}
	return nil
}

// ValidateQuantum rejects non-positive round-robin quanta.
func ValidateQuantum(quantum int64) error {
	if quantum <= 0 {
		return invalid("quantum must be positive, got %d", quantum)
	}
	return nil
}

// ValidateDisk checks head and request positions against the cylinder bound.
func ValidateDisk(w DiskWorkload) error {
	if w.MaxCylinder < 0 {
		return invalid("max cylinder must be non-negative, got %d", w.MaxCylinder)
	}
	if w.HeadStart < 0 || w.HeadStart > w.MaxCylinder {
		return invalid("head start %d outside [0,%d]", w.HeadStart, w.MaxCylinder)
	}
	for i, r := range w.Requests {
		if r < 0 || r > w.MaxCylinder {
			return invalid("request %d: track %d outside [0,%d]", i, r, w.MaxCylinder)
		}
	}
	return nil
}
