package sim

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/os-algorithms/schedsim/sim/internal/testutil"
)

// assertTimelineInvariants checks that a CPU result's timeline is sorted,
// contiguous, spans [min(arrival), max(completion)], and that every process
// owns exactly its burst time.
func assertTimelineInvariants(t *testing.T, specs []ProcessSpec, res *SimulationResult) {
	t.Helper()
	tl := res.Timeline()
	if len(tl) == 0 {
		t.Fatal("empty timeline")
	}
	for i, g := range tl {
		if g.End <= g.Start {
			t.Errorf("interval %d %v: end must exceed start", i, g)
		}
		if i > 0 {
			if g.Start != tl[i-1].End {
				t.Errorf("interval %d %v not contiguous with %v", i, g, tl[i-1])
			}
			if g.Owner == tl[i-1].Owner {
				t.Errorf("interval %d %v not merged with previous same-owner interval", i, g)
			}
		}
	}

	minArrival := specs[0].ArrivalTime
	for _, s := range specs {
		minArrival = min(minArrival, s.ArrivalTime)
	}
	m := res.Metrics()
	var maxCompletion int64
	for _, row := range m.Processes {
		maxCompletion = max(maxCompletion, row.CompletionTime)
	}
	if tl[0].Start != minArrival {
		t.Errorf("timeline starts at %d, want min arrival %d", tl[0].Start, minArrival)
	}
	if tl[len(tl)-1].End != maxCompletion {
		t.Errorf("timeline ends at %d, want max completion %d", tl[len(tl)-1].End, maxCompletion)
	}

	owned := make(map[string]int64)
	for _, g := range tl {
		owned[g.Owner] += g.Duration()
	}
	for _, s := range specs {
		if owned[s.ID] != s.BurstTime {
			t.Errorf("process %s owns %d ticks, want burst %d", s.ID, owned[s.ID], s.BurstTime)
		}
		row, ok := m.Row(s.ID)
		if !ok {
			t.Errorf("process %s missing from metrics", s.ID)
			continue
		}
		if row.TurnaroundTime != row.CompletionTime-row.ArrivalTime {
			t.Errorf("%s: turnaround %d != completion %d - arrival %d", s.ID, row.TurnaroundTime, row.CompletionTime, row.ArrivalTime)
		}
		if row.WaitingTime != row.TurnaroundTime-row.BurstTime {
			t.Errorf("%s: waiting %d != turnaround %d - burst %d", s.ID, row.WaitingTime, row.TurnaroundTime, row.BurstTime)
		}
		if row.TurnaroundTime < 0 || row.WaitingTime < 0 || row.ResponseTime < 0 {
			t.Errorf("%s: negative metric %+v", s.ID, row)
		}
		if row.ResponseTime > row.WaitingTime {
			t.Errorf("%s: response %d exceeds waiting %d", s.ID, row.ResponseTime, row.WaitingTime)
		}
		// the last tick a process owns is its completion
		var lastEnd int64
		for _, g := range tl {
			if g.Owner == s.ID {
				lastEnd = g.End
			}
		}
		if lastEnd != row.CompletionTime {
			t.Errorf("%s: last owned tick ends at %d, completion is %d", s.ID, lastEnd, row.CompletionTime)
		}
	}
}

// assertAveragesMatchRows recomputes aggregates from the rows.
func assertAveragesMatchRows(t *testing.T, m Metrics) {
	t.Helper()
	var tat, wt float64
	for _, r := range m.Processes {
		tat += float64(r.TurnaroundTime)
		wt += float64(r.WaitingTime)
	}
	n := float64(len(m.Processes))
	testutil.AssertFloat64Equal(t, "avg turnaround", tat/n, m.AvgTurnaround, 1e-9)
	testutil.AssertFloat64Equal(t, "avg waiting", wt/n, m.AvgWaiting, 1e-9)
}

// randomSpecs generates n processes with arrivals in [0, 20), bursts in
// [1, 8] and priorities in [0, 4].
func randomSpecs(rng *rand.Rand, n int) []ProcessSpec {
	specs := make([]ProcessSpec, n)
	for i := range specs {
		specs[i] = ProcessSpec{
			ID:          fmt.Sprintf("P%d", i+1),
			ArrivalTime: rng.Int63n(20),
			BurstTime:   1 + rng.Int63n(8),
			Priority:    rng.Int63n(5),
		}
	}
	return specs
}

func goldenSpecs(tc testutil.GoldenTestCase) []ProcessSpec {
	specs := make([]ProcessSpec, len(tc.Processes))
	for i, p := range tc.Processes {
		specs[i] = ProcessSpec{ID: p.ID, ArrivalTime: p.Arrival, BurstTime: p.Burst, Priority: p.Priority}
	}
	return specs
}

func owners(tl []GanttInterval) []string {
	out := make([]string, len(tl))
	for i, g := range tl {
		out[i] = g.Owner
	}
	return out
}
