package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/os-algorithms/schedsim/sim"
)

// execute runs a fresh command tree and captures everything it writes.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestParseProcess(t *testing.T) {
	tests := []struct {
		in      string
		want    sim.ProcessSpec
		wantErr bool
	}{
		{"P1:0:5:2", sim.ProcessSpec{ID: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2}, false},
		{"P2:1:3", sim.ProcessSpec{ID: "P2", ArrivalTime: 1, BurstTime: 3}, false},
		{"P3: 2 : 1 : -1", sim.ProcessSpec{ID: "P3", ArrivalTime: 2, BurstTime: 1, Priority: -1}, false},
		{"P1:0", sim.ProcessSpec{}, true},
		{"P1:0:5:2:9", sim.ProcessSpec{}, true},
		{"P1:x:5", sim.ProcessSpec{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseProcess(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriorityCmd_TextOutput(t *testing.T) {
	// GIVEN the three-process scenario on the command line
	out, err := execute(t, "priority", "-p", "P1:0:5:2", "-p", "P2:1:3:1", "-p", "P3:2:1:3")

	// THEN the Gantt chart and averages are printed
	require.NoError(t, err)
	assert.Contains(t, out, "Policy: priority")
	assert.Contains(t, out, "Gantt chart")
	assert.Contains(t, out, "6.00")
	assert.Contains(t, out, "3.00")
	assert.Contains(t, out, "Preemptions: 1")
}

func TestRoundRobinCmd_JSONOutput(t *testing.T) {
	out, err := execute(t, "rr", "--quantum", "2", "-p", "P1:0:5", "-p", "P2:1:3", "-p", "P3:2:1", "-o", "json")
	require.NoError(t, err)

	var rep sim.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, sim.PolicyRoundRobin, rep.Policy)
	assert.Equal(t, "[0,2)P1 [2,4)P2 [4,5)P3 [5,7)P1 [7,8)P2 [8,9)P1", sim.FormatTimeline(rep.Timeline))
}

func TestRoundRobinCmd_ZeroQuantum_Errors(t *testing.T) {
	_, err := execute(t, "rr", "--quantum", "0", "-p", "P1:0:5")
	assert.ErrorIs(t, err, sim.ErrInvalidInput)
}

func TestCircularScanCmd_YAMLOutput(t *testing.T) {
	out, err := execute(t, "cscan", "--head", "50", "--max-cylinder", "199",
		"--requests", "82,170,43,140,24,16,190", "-o", "yaml")
	require.NoError(t, err)

	var rep sim.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.NotNil(t, rep.Seek)
	assert.Equal(t, int64(373), rep.Seek.TotalHeadMovement)
}

func TestCircularScanCmd_TextOutput(t *testing.T) {
	out, err := execute(t, "cscan", "--head", "50", "--requests", "82,43", "--sweep-to-boundary")
	require.NoError(t, err)
	assert.Contains(t, out, "Service order: 82 -> 43")
	assert.Contains(t, out, "Head path: 50 -> 82 -> 199 -> 0 -> 43")
	assert.Contains(t, out, "391")
}

func TestCircularScanCmd_OutOfRange_Errors(t *testing.T) {
	_, err := execute(t, "cscan", "--head", "50", "--max-cylinder", "99", "--requests", "170")
	assert.ErrorIs(t, err, sim.ErrInvalidInput)
}

func TestRunCmd_ExampleScenario(t *testing.T) {
	out, err := execute(t, "run", "--scenario", filepath.Join("..", "examples", "round-robin-scenario-b.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Policy: round-robin")
	assert.Contains(t, out, "6.33")
	assert.Contains(t, out, "3.33")
}

func TestRunCmd_MissingScenario_Errors(t *testing.T) {
	_, err := execute(t, "run", "--scenario", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scenario")
}

func TestCompareCmd_ListsBothCPUPolicies(t *testing.T) {
	out, err := execute(t, "compare", "--scenario", filepath.Join("..", "examples", "priority-scenario-a.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "priority")
	assert.Contains(t, out, "round-robin")
}

func TestRootCmd_InvalidLogLevel_Errors(t *testing.T) {
	_, err := execute(t, "--log", "loud", "priority", "-p", "P1:0:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRootCmd_UnknownOutputFormat_Errors(t *testing.T) {
	_, err := execute(t, "priority", "-p", "P1:0:1", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
