// Package sim provides the scheduling simulation engine for schedsim.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - process.go: Process lifecycle (waiting → running → completed) and DiskRequest
//   - timeline.go: TimelineBuilder, which merges consecutive same-owner spans into Gantt intervals
//   - scheduler.go: the Scheduler interface, the Workload input, and the name registry
//
// # Schedulers
//
// Each scheduler is a pure function from a Workload to an immutable SimulationResult:
//   - priority.go: preemptive priority (lowest value first, then arrival, then ID)
//   - round_robin.go: fixed-quantum rotation over a FIFO ReadyQueue (queue.go)
//   - cscan.go: C-SCAN disk-head ordering
//
// CPU results carry the Gantt timeline, the per-process Metrics table
// (metrics.go) and a dispatch trace (sim/trace). Disk results carry a SeekResult.
//
// Invalid input is reported as an error wrapping ErrInvalidInput before any
// state is built. Broken internal invariants panic.
//
// Scenario files (scenario.go) describe a policy plus its workload in YAML.
// Random process sets come from sim/workload, seeded per field through
// PartitionedRNG (rng.go).
package sim
