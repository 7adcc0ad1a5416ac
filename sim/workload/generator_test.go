package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os-algorithms/schedsim/sim"
)

func validSpec() *GeneratorSpec {
	return &GeneratorSpec{
		Seed:     42,
		Count:    20,
		Arrival:  ArrivalSpec{Process: "poisson", Rate: 0.5},
		Burst:    DistSpec{Type: "uniform", Params: map[string]float64{"min": 1, "max": 8}},
		Priority: PrioritySpec{Min: 0, Max: 4},
	}
}

func TestGenerateProcesses_ValidForSchedulers(t *testing.T) {
	// GIVEN a valid spec
	procs, err := GenerateProcesses(validSpec())
	require.NoError(t, err)

	// THEN the processes pass validation and run under both CPU policies
	require.Len(t, procs, 20)
	require.NoError(t, sim.ValidateProcesses(procs))
	assert.Equal(t, "P1", procs[0].ID)
	assert.Equal(t, int64(0), procs[0].ArrivalTime)
	for i := 1; i < len(procs); i++ {
		assert.GreaterOrEqual(t, procs[i].ArrivalTime, procs[i-1].ArrivalTime)
	}
	for _, p := range procs {
		assert.GreaterOrEqual(t, p.Priority, int64(0))
		assert.LessOrEqual(t, p.Priority, int64(4))
	}
	_, err = sim.RunPriorityPreemptive(procs)
	require.NoError(t, err)
	_, err = sim.RunRoundRobin(procs, 3)
	require.NoError(t, err)
}

func TestGenerateProcesses_Deterministic(t *testing.T) {
	a, err := GenerateProcesses(validSpec())
	require.NoError(t, err)
	b, err := GenerateProcesses(validSpec())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other := validSpec()
	other.Seed = 43
	c, err := GenerateProcesses(other)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateProcesses_CustomPrefix(t *testing.T) {
	spec := validSpec()
	spec.IDPrefix = "job-"
	spec.Count = 2
	procs, err := GenerateProcesses(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"job-1", "job-2"}, []string{procs[0].ID, procs[1].ID})
}

func TestGeneratorSpec_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratorSpec)
	}{
		{"zero count", func(s *GeneratorSpec) { s.Count = 0 }},
		{"unknown arrival", func(s *GeneratorSpec) { s.Arrival.Process = "bursty" }},
		{"zero rate", func(s *GeneratorSpec) { s.Arrival.Rate = 0 }},
		{"unknown burst type", func(s *GeneratorSpec) { s.Burst.Type = "zipf" }},
		{"missing burst param", func(s *GeneratorSpec) { s.Burst.Params = map[string]float64{"min": 1} }},
		{"inverted priority", func(s *GeneratorSpec) { s.Priority = PrioritySpec{Min: 3, Max: 1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(spec)
			assert.Error(t, spec.Validate())
			_, err := GenerateProcesses(spec)
			assert.Error(t, err)
		})
	}
}

func TestLoadGeneratorSpec_StrictParsing(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
seed: 7
count: 5
arrival: {process: constant, rate: 0.5}
burst: {type: constant, params: {value: 3}}
priority: {min: 1, max: 1}
`), 0o644))
	spec, err := LoadGeneratorSpec(good)
	require.NoError(t, err)
	procs, err := GenerateProcesses(spec)
	require.NoError(t, err)
	assert.Equal(t, int64(8), procs[4].ArrivalTime)
	assert.Equal(t, int64(3), procs[4].BurstTime)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("seed: 1\ncount: 2\nrat: 3\n"), 0o644))
	_, err = LoadGeneratorSpec(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing generator spec")
}

func TestLoadGeneratorSpec_ExampleFile(t *testing.T) {
	spec, err := LoadGeneratorSpec(filepath.Join("..", "..", "examples", "generator.yaml"))
	require.NoError(t, err)
	require.NoError(t, spec.Validate())
}
