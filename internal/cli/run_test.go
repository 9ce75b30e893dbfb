package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
scenario: triangle: {
	vectors: {
		a: {x: 3.0, y: 4.0}
		b: {x: 5.0, y: 12.0}
	}
	steps: [
		{op: "add", operands: ["a", "b"], expect: {kind: "xy", elements: [8.0, 16.0]}},
		{op: "dot", operands: ["a", "a"], expect: {scalar: 25.0}},
	]
}
`

const failingScenario = `
scenario: wrong: {
	vectors: {a: {x: 3.0, y: 4.0}}
	steps: [
		{op: "dot", operands: ["a", "a"], expect: {scalar: 24.0}},
	]
}
`

func writeScenarioDir(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scenario.cue"), []byte(content), 0o644))
	return dir
}

func TestRunPassingScenario(t *testing.T) {
	dir := writeScenarioDir(t, passingScenario)
	out, err := executeCommand(t, "run", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "scenario: triangle")
	assert.Contains(t, out, "pass: true")
}

func TestRunFailingScenarioExitsOne(t *testing.T) {
	dir := writeScenarioDir(t, failingScenario)
	out, err := executeCommand(t, "run", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "pass: false")
	assert.Contains(t, out, "failures:")
}

func TestRunPersistsToDatabase(t *testing.T) {
	dir := writeScenarioDir(t, passingScenario)
	db := filepath.Join(t.TempDir(), "trace.db")

	out, err := executeCommand(t, "run", "--db", db, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "run_token:")
	assert.FileExists(t, db)
}

func TestRunMissingDirectory(t *testing.T) {
	_, err := executeCommand(t, "run", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunBadScenarioReportsCode(t *testing.T) {
	dir := writeScenarioDir(t, `
scenario: bad: {
	vectors: {a: {x: 1.0, y: 2.0}}
	steps: [{op: "frobnicate", operands: ["a"]}]
}
`)
	out, err := executeCommand(t, "run", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "E103")
}

func TestRunJSONOutput(t *testing.T) {
	dir := writeScenarioDir(t, passingScenario)
	out, err := executeCommand(t, "--format", "json", "run", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `"status":"ok"`)
	assert.Contains(t, out, `"op":"add"`)
}
