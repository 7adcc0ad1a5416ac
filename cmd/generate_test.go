package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os-algorithms/schedsim/sim"
)

func TestGenerateCmd_OutputIsRunnableScenario(t *testing.T) {
	// GIVEN the example generator spec
	out, err := execute(t, "generate", "--spec", filepath.Join("..", "examples", "generator.yaml"), "--policy", "rr", "-q", "3")
	require.NoError(t, err)

	// WHEN the output is parsed back as a scenario
	sc, err := sim.ParseScenario([]byte(out))
	require.NoError(t, err)

	// THEN it names the canonical policy and runs
	assert.Equal(t, sim.PolicyRoundRobin, sc.Policy)
	assert.Equal(t, int64(3), sc.Quantum)
	assert.Len(t, sc.Processes, 8)
	_, err = sc.Run()
	require.NoError(t, err)
}

func TestGenerateCmd_SeedOverrideChangesOutput(t *testing.T) {
	spec := filepath.Join("..", "examples", "generator.yaml")
	a, err := execute(t, "generate", "--spec", spec)
	require.NoError(t, err)
	b, err := execute(t, "generate", "--spec", spec)
	require.NoError(t, err)
	c, err := execute(t, "generate", "--spec", spec, "--seed", "99")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerateCmd_DiskPolicyRejected(t *testing.T) {
	_, err := execute(t, "generate", "--spec", filepath.Join("..", "examples", "generator.yaml"), "--policy", "c-scan")
	assert.ErrorIs(t, err, sim.ErrInvalidInput)
}
