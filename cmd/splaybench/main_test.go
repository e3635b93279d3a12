package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/g-m-twostay/sortedlist/Trees/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOps(t *testing.T) {
	ops, err := parseOps("")
	require.NoError(t, err)
	assert.Nil(t, ops)

	ops, err = parseOps("get, floor-query,insert")
	require.NoError(t, err)
	assert.Equal(t, []measure.Op{measure.Get, measure.FloorQuery, measure.Insert}, ops)

	_, err = parseOps("get,nope")
	assert.Error(t, err)
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"splaybench"}, args...))
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := runApp(t, "--ops", "get,floor-query", "--min-size", "8", "--steps", "3",
		"--try-count", "2", "--repeat-mean", "2", "--seed", "1", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "LABEL"))
	for i, op := range []string{"get", "floor-query"} {
		fields := strings.Fields(lines[i+1])
		require.GreaterOrEqual(t, len(fields), 3)
		assert.Equal(t, []string{"SplayList", op, "8..32"}, fields[:3])
	}
}

func TestRunEnv(t *testing.T) {
	t.Setenv("SPLAYBENCH_MIN_SIZE", "4")
	t.Setenv("SPLAYBENCH_STEPS", "2")
	t.Setenv("SPLAYBENCH_OPS", "iterate")
	out, err := runApp(t, "--try-count", "1", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "4..8")
}

func TestRunErrors(t *testing.T) {
	_, err := runApp(t, "--log-level", "loud")
	assert.Error(t, err)

	_, err = runApp(t, "--ops", "nope", "--log-level", "error")
	assert.Error(t, err)

	out, err := runApp(t, "--steps", "1", "--log-level", "error")
	assert.Error(t, err)
	assert.NotContains(t, out, "SplayList")
}

func TestPrintResults(t *testing.T) {
	var out bytes.Buffer
	printResults(&out, []measure.Result{{
		Label: "x",
		Op:    measure.Ceiling,
		Steps: []measure.Step{{Size: 2, MeanMicros: 1000}, {Size: 4, MeanMicros: 3000}},
		Slope: 2000, RSquared: 1,
	}})
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"x", "ceiling", "2..4", "1.000000", "3.000000", "2000.000000", "1.000000"}, strings.Fields(lines[1]))
}
