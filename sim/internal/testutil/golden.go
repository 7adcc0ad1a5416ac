// Package testutil provides shared test infrastructure for the schedsim engine.
// It holds golden dataset types and assertion helpers used by sim/ and the
// outer packages' tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single scheduling problem and its expected outcome.
type GoldenTestCase struct {
	Name      string          `json:"name"`
	Policy    string          `json:"policy"`
	Quantum   int64           `json:"quantum,omitempty"`
	Processes []GoldenProcess `json:"processes,omitempty"`
	Disk      *GoldenDisk     `json:"disk,omitempty"`
	Expected  GoldenExpected  `json:"expected"`
}

// GoldenProcess is a process input.
type GoldenProcess struct {
	ID       string `json:"id"`
	Arrival  int64  `json:"arrival"`
	Burst    int64  `json:"burst"`
	Priority int64  `json:"priority"`
}

// GoldenDisk is a disk workload input.
type GoldenDisk struct {
	HeadStart       int64   `json:"head_start"`
	MaxCylinder     int64   `json:"max_cylinder"`
	Requests        []int64 `json:"requests"`
	SweepToBoundary bool    `json:"sweep_to_boundary"`
}

// GoldenInterval is an expected Gantt interval.
type GoldenInterval struct {
	Owner string `json:"owner"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

// GoldenExpected holds the expected outcome of a golden test case.
type GoldenExpected struct {
	// CPU policies
	Timeline      []GoldenInterval `json:"timeline,omitempty"`
	Completion    map[string]int64 `json:"completion,omitempty"`
	AvgTurnaround float64          `json:"avg_turnaround,omitempty"`
	AvgWaiting    float64          `json:"avg_waiting,omitempty"`

	// disk policy
	Sequence          []int64 `json:"sequence,omitempty"`
	Path              []int64 `json:"path,omitempty"`
	TotalHeadMovement int64   `json:"total_head_movement,omitempty"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
