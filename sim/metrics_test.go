package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/os-algorithms/schedsim/sim/internal/testutil"
)

func completed(spec ProcessSpec, firstRun, completion int64) *Process {
	p := newProcess(spec)
	p.serve(firstRun, spec.BurstTime)
	p.complete(completion)
	return p
}

func TestCalculateMetrics_RowsAndAverages(t *testing.T) {
	// GIVEN two completed processes and their timeline
	procs := []*Process{
		completed(ProcessSpec{ID: "P1", ArrivalTime: 0, BurstTime: 2, Priority: 1}, 0, 2),
		completed(ProcessSpec{ID: "P2", ArrivalTime: 1, BurstTime: 3, Priority: 2}, 2, 5),
	}
	tl := []GanttInterval{
		{Owner: "P1", Start: 0, End: 2},
		{Owner: "P2", Start: 2, End: 5},
	}

	// WHEN metrics are calculated
	m := CalculateMetrics(procs, tl)

	// THEN rows follow input order and aggregates are means
	assert.Equal(t, []ProcessMetrics{
		{ID: "P1", ArrivalTime: 0, BurstTime: 2, Priority: 1, CompletionTime: 2, TurnaroundTime: 2, WaitingTime: 0, ResponseTime: 0},
		{ID: "P2", ArrivalTime: 1, BurstTime: 3, Priority: 2, CompletionTime: 5, TurnaroundTime: 4, WaitingTime: 1, ResponseTime: 1},
	}, m.Processes)
	testutil.AssertFloat64Equal(t, "avg turnaround", 3.0, m.AvgTurnaround, 1e-9)
	testutil.AssertFloat64Equal(t, "avg waiting", 0.5, m.AvgWaiting, 1e-9)
	testutil.AssertFloat64Equal(t, "avg response", 0.5, m.AvgResponse, 1e-9)
	assert.Equal(t, int64(0), m.Start)
	assert.Equal(t, int64(5), m.Makespan)
	assert.Equal(t, int64(5), m.BusyTime)
	assert.Equal(t, int64(0), m.IdleTime)
	testutil.AssertFloat64Equal(t, "utilization", 1.0, m.Utilization, 1e-9)
	testutil.AssertFloat64Equal(t, "throughput", 0.4, m.Throughput, 1e-9)
}

func TestCalculateMetrics_IdleLowersUtilization(t *testing.T) {
	procs := []*Process{
		completed(ProcessSpec{ID: "P1", ArrivalTime: 0, BurstTime: 1}, 0, 1),
		completed(ProcessSpec{ID: "P2", ArrivalTime: 3, BurstTime: 1}, 3, 4),
	}
	tl := []GanttInterval{
		{Owner: "P1", Start: 0, End: 1},
		{Owner: IdleOwner, Start: 1, End: 3},
		{Owner: "P2", Start: 3, End: 4},
	}
	m := CalculateMetrics(procs, tl)
	assert.Equal(t, int64(2), m.IdleTime)
	assert.Equal(t, int64(2), m.BusyTime)
	testutil.AssertFloat64Equal(t, "utilization", 0.5, m.Utilization, 1e-9)
}

func TestCalculateMetrics_IncompleteProcess_Panics(t *testing.T) {
	p := newProcess(ProcessSpec{ID: "P1", BurstTime: 2})
	assert.Panics(t, func() { CalculateMetrics([]*Process{p}, nil) })
}

func TestCalculateMetrics_DoesNotMutateProcesses(t *testing.T) {
	p := completed(ProcessSpec{ID: "P1", ArrivalTime: 1, BurstTime: 2}, 1, 3)
	before := *p
	CalculateMetrics([]*Process{p}, []GanttInterval{{Owner: "P1", Start: 1, End: 3}})
	assert.Equal(t, before, *p)
}

func TestMetrics_Row(t *testing.T) {
	m := Metrics{Processes: []ProcessMetrics{{ID: "A"}, {ID: "B", CompletionTime: 7}}}
	row, ok := m.Row("B")
	assert.True(t, ok)
	assert.Equal(t, int64(7), row.CompletionTime)
	_, ok = m.Row("Z")
	assert.False(t, ok)
}

func TestCalculateMean(t *testing.T) {
	assert.Equal(t, 0.0, CalculateMean([]int64{}))
	assert.Equal(t, 2.0, CalculateMean([]int64{1, 2, 3}))
	assert.Equal(t, 2.5, CalculateMean([]float64{2, 3}))
}
