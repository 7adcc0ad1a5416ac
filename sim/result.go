package sim

import (
	"encoding/json"

	"github.com/os-algorithms/schedsim/sim/trace"
)

// Resource names the single resource a policy allocates.
type Resource string

const (
	ResourceCPU  Resource = "cpu"
	ResourceDisk Resource = "disk"
)

// SeekResult is the outcome of a disk-head scheduling run.
type SeekResult struct {
	HeadStart         int64   `yaml:"head_start" json:"head_start"`
	MaxCylinder       int64   `yaml:"max_cylinder" json:"max_cylinder"`
	Sequence          []int64 `yaml:"sequence" json:"sequence"` // serviced tracks in service order
	Path              []int64 `yaml:"path" json:"path"`         // every head position visited, wrap points included
	TotalHeadMovement int64   `yaml:"total_head_movement" json:"total_head_movement"`
	Wrapped           bool    `yaml:"wrapped" json:"wrapped"`
}

func (s SeekResult) clone() SeekResult {
	out := s
	out.Sequence = append([]int64(nil), s.Sequence...)
	out.Path = append([]int64(nil), s.Path...)
	return out
}

// SimulationResult is the immutable output of one run. It is built once when
// the run ends; every accessor returns a copy.
type SimulationResult struct {
	policy   string
	resource Resource

	// CPU runs
	timeline []GanttInterval
	metrics  Metrics
	trace    *trace.SimulationTrace

	// disk runs
	seek *SeekResult
}

func newCPUResult(policy string, procs []*Process, timeline []GanttInterval, tr *trace.SimulationTrace) *SimulationResult {
	return &SimulationResult{
		policy:   policy,
		resource: ResourceCPU,
		timeline: timeline,
		metrics:  CalculateMetrics(procs, timeline),
		trace:    tr,
	}
}

func newDiskResult(policy string, seek SeekResult) *SimulationResult {
	return &SimulationResult{
		policy:   policy,
		resource: ResourceDisk,
		seek:     &seek,
	}
}

// Policy returns the name of the policy that produced the result.
func (r *SimulationResult) Policy() string { return r.policy }

// Resource returns the resource the policy allocated.
func (r *SimulationResult) Resource() Resource { return r.resource }

// Timeline returns the sealed Gantt intervals. Empty for disk runs.
func (r *SimulationResult) Timeline() []GanttInterval {
	out := make([]GanttInterval, len(r.timeline))
	copy(out, r.timeline)
	return out
}

// Metrics returns the metrics table and aggregates. Zero for disk runs.
func (r *SimulationResult) Metrics() Metrics { return r.metrics.clone() }

// Trace returns the dispatch trace. Nil for disk runs.
func (r *SimulationResult) Trace() *trace.SimulationTrace { return r.trace.Clone() }

// TraceSummary summarizes the dispatch trace. Nil for disk runs.
func (r *SimulationResult) TraceSummary() *trace.TraceSummary {
	if r.trace == nil {
		return nil
	}
	return trace.Summarize(r.trace)
}

// Seek returns the disk outcome; ok is false for CPU runs.
func (r *SimulationResult) Seek() (seek SeekResult, ok bool) {
	if r.seek == nil {
		return SeekResult{}, false
	}
	return r.seek.clone(), true
}

// Report is the serializable snapshot of a SimulationResult.
type Report struct {
	Policy     string                 `yaml:"policy" json:"policy"`
	Resource   Resource               `yaml:"resource" json:"resource"`
	Timeline   []GanttInterval        `yaml:"timeline,omitempty" json:"timeline,omitempty"`
	Metrics    *Metrics               `yaml:"metrics,omitempty" json:"metrics,omitempty"`
	Trace      *trace.TraceSummary    `yaml:"trace,omitempty" json:"trace,omitempty"`
	Dispatches []trace.DispatchRecord `yaml:"dispatches,omitempty" json:"dispatches,omitempty"`
	Seek       *SeekResult            `yaml:"seek,omitempty" json:"seek,omitempty"`
}

// Report returns a detached snapshot suitable for encoding.
func (r *SimulationResult) Report() Report {
	rep := Report{Policy: r.policy, Resource: r.resource}
	switch r.resource {
	case ResourceCPU:
		m := r.Metrics()
		rep.Timeline = r.Timeline()
		rep.Metrics = &m
		rep.Trace = r.TraceSummary()
		rep.Dispatches = r.Trace().Dispatches
	case ResourceDisk:
		s, _ := r.Seek()
		rep.Seek = &s
	}
	return rep
}

// MarshalJSON encodes the Report snapshot.
func (r *SimulationResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Report())
}

// MarshalYAML encodes the Report snapshot.
func (r *SimulationResult) MarshalYAML() (interface{}, error) {
	return r.Report(), nil
}
