package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args and returns its
// combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCountMode(t *testing.T) {
	out, err := execute(t, "-n", "6", "-w", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "6x6 board: 4 solutions")
}

func TestListMode(t *testing.T) {
	out, err := execute(t, "-n", "4", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "4x4 board: 2 solutions")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3) // Summary plus two solutions

	var got []string
	for _, line := range lines[1:] {
		_, sol, found := strings.Cut(line, ": ")
		require.True(t, found, "malformed list line %q", line)
		got = append(got, sol)
	}
	assert.ElementsMatch(t, []string{"a2 b4 c1 d3", "a3 b1 c4 d2"}, got)
}

func TestBoardMode(t *testing.T) {
	out, err := execute(t, "-n", "1", "--board")
	require.NoError(t, err)
	assert.Contains(t, out, "1x1 board: 1 solutions")
	assert.Contains(t, out, "1 Q")
}

func TestFirstMode(t *testing.T) {
	out, err := execute(t, "-n", "8", "--first", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "first solution for 8x8")
	assert.Contains(t, out, "a1 b5 c8 d6 e3 f7 g2 h4")
}

func TestFirstModeNoSolution(t *testing.T) {
	out, err := execute(t, "-n", "3", "--first")
	require.NoError(t, err)
	assert.Contains(t, out, "no solution for a 3x3 board")
}

func TestPrintMode(t *testing.T) {
	out, err := execute(t, "-n", "6", "-w", "1", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "solution 1:")
	assert.Contains(t, out, "solution 4:")
}

func TestStatsMode(t *testing.T) {
	out, err := execute(t, "-n", "5", "-w", "2", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "5x5 board: 10 solutions")
	assert.Contains(t, out, "placements=")
	assert.Contains(t, out, "workers<=2")
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := execute(t, "-n", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board size")

	_, err = execute(t, "-n", "8", "-w", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker count")
}

func TestConfigFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 5\nworkers: 2\n"), 0o644))

	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "5x5 board: 10 solutions")
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 5\n"), 0o644))

	out, err := execute(t, "--config", path, "-n", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "6x6 board: 4 solutions")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
