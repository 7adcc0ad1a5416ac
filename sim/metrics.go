// Derives per-process and run-wide performance metrics from a completed run.

package sim

import (
	"fmt"
)

// ProcessMetrics is one row of the metrics table.
type ProcessMetrics struct {
	ID             string `yaml:"id" json:"id"`
	ArrivalTime    int64  `yaml:"arrival" json:"arrival"`
	BurstTime      int64  `yaml:"burst" json:"burst"`
	Priority       int64  `yaml:"priority" json:"priority"`
	CompletionTime int64  `yaml:"completion" json:"completion"`
	TurnaroundTime int64  `yaml:"turnaround" json:"turnaround"`
	WaitingTime    int64  `yaml:"waiting" json:"waiting"`
	ResponseTime   int64  `yaml:"response" json:"response"` // first dispatch - arrival
}

// Metrics aggregates statistics about a completed CPU run.
type Metrics struct {
	Processes []ProcessMetrics `yaml:"processes" json:"processes"`

	AvgTurnaround float64 `yaml:"avg_turnaround" json:"avg_turnaround"`
	AvgWaiting    float64 `yaml:"avg_waiting" json:"avg_waiting"`
	AvgResponse   float64 `yaml:"avg_response" json:"avg_response"`

	Start       int64   `yaml:"start" json:"start"`       // first decision point
	Makespan    int64   `yaml:"makespan" json:"makespan"` // end of the last interval
	BusyTime    int64   `yaml:"busy_time" json:"busy_time"`
	IdleTime    int64   `yaml:"idle_time" json:"idle_time"`
	Utilization float64 `yaml:"utilization" json:"utilization"` // busy / (makespan - start)
	Throughput  float64 `yaml:"throughput" json:"throughput"`   // processes per tick over the span
}

// CalculateMetrics reads completed processes and the sealed timeline.
// Rows follow the order of procs. It never mutates its inputs and panics if
// a process has not completed.
func CalculateMetrics(procs []*Process, timeline []GanttInterval) Metrics {
	m := Metrics{Processes: make([]ProcessMetrics, 0, len(procs))}

	turnarounds := make([]int64, 0, len(procs))
	waits := make([]int64, 0, len(procs))
	responses := make([]int64, 0, len(procs))
	for _, p := range procs {
		if !p.Completed() {
			panic(fmt.Sprintf("CalculateMetrics: process %s has not completed", p.ID))
		}
		row := ProcessMetrics{
			ID:             p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			CompletionTime: p.CompletionTime,
			TurnaroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
			ResponseTime:   p.FirstRunTime - p.ArrivalTime,
		}
		m.Processes = append(m.Processes, row)
		turnarounds = append(turnarounds, row.TurnaroundTime)
		waits = append(waits, row.WaitingTime)
		responses = append(responses, row.ResponseTime)
	}
	m.AvgTurnaround = CalculateMean(turnarounds)
	m.AvgWaiting = CalculateMean(waits)
	m.AvgResponse = CalculateMean(responses)

	if len(timeline) > 0 {
		m.Start = timeline[0].Start
		m.Makespan = timeline[len(timeline)-1].End
	}
	for _, g := range timeline {
		if g.Idle() {
			m.IdleTime += g.Duration()
		} else {
			m.BusyTime += g.Duration()
		}
	}
	span := float64(m.Makespan - m.Start)
	m.Utilization = ratio(float64(m.BusyTime), span)
	m.Throughput = ratio(float64(len(procs)), span)
	return m
}

// Row returns the metrics row for id.
func (m Metrics) Row(id string) (ProcessMetrics, bool) {
	for _, r := range m.Processes {
		if r.ID == id {
			return r, true
		}
	}
	return ProcessMetrics{}, false
}

// clone returns a deep copy.
func (m Metrics) clone() Metrics {
	out := m
	out.Processes = make([]ProcessMetrics, len(m.Processes))
	copy(out.Processes, m.Processes)
	return out
}
