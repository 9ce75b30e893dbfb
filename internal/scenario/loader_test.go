package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scenario.cue"), []byte(content), 0o644))
	return dir
}

const validScenario = `
scenario: kinematics: {
	name: "kinematics"
	vectors: {
		a: {x:  3.0, y: 4.0}
		b: {pt: 2.0, phi: 0.5, eta: 1.0, mass: 3.0}
	}
	steps: [
		{op: "add", operands: ["a", "b"]},
		{op: "rotate_z", operands: ["a"], params: [1.5]},
		{op: "dot", operands: ["a", "a"], expect: {scalar: 25.0, tol: 1e-9}},
	]
}
`

func TestLoadDirValid(t *testing.T) {
	dir := writeScenario(t, validScenario)
	result, errs := LoadDir(dir, LoadModeFailFast)
	require.Empty(t, errs)
	require.Len(t, result.Scenarios, 1)

	s := result.Scenarios[0]
	assert.Equal(t, "kinematics", s.Name)
	assert.Equal(t, 4.0, s.Vectors["a"]["y"])
	require.Len(t, s.Steps, 3)
	assert.Equal(t, []string{"a", "b"}, s.Steps[0].Operands)
	assert.Equal(t, []float64{1.5}, s.Steps[1].Params)
	require.NotNil(t, s.Steps[2].Expect)
	assert.Equal(t, 25.0, *s.Steps[2].Expect.Scalar)
	assert.Equal(t, 1, result.FileCount)
}

func TestLoadDirLabelFillsName(t *testing.T) {
	dir := writeScenario(t, `
scenario: unnamed: {
	vectors: {a: {x: 1.0, y: 2.0}}
	steps: [{op: "unit", operands: ["a"]}]
}
`)
	result, errs := LoadDir(dir, LoadModeFailFast)
	require.Empty(t, errs)
	require.Len(t, result.Scenarios, 1)
	assert.Equal(t, "unnamed", result.Scenarios[0].Name)
}

func TestLoadDirUnknownOp(t *testing.T) {
	dir := writeScenario(t, `
scenario: bad: {
	vectors: {a: {x: 1.0, y: 2.0}}
	steps: [{op: "frobnicate", operands: ["a"]}]
}
`)
	_, errs := LoadDir(dir, LoadModeCollectAll)
	require.Len(t, errs, 1)
	le, ok := errs[0].(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeUnknownOp, le.Code)
	assert.Contains(t, le.Error(), "frobnicate")
}

func TestLoadDirUnknownVectorReference(t *testing.T) {
	dir := writeScenario(t, `
scenario: bad: {
	vectors: {a: {x: 1.0, y: 2.0}}
	steps: [{op: "add", operands: ["a", "ghost"]}]
}
`)
	_, errs := LoadDir(dir, LoadModeCollectAll)
	require.Len(t, errs, 1)
	le, ok := errs[0].(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeUnknownVector, le.Code)
}

func TestLoadDirCollectAllKeepsGoing(t *testing.T) {
	dir := writeScenario(t, `
scenario: {
	bad1: {
		vectors: {a: {x: 1.0, y: 2.0}}
		steps: [{op: "nope", operands: ["a"]}]
	}
	bad2: {
		vectors: {a: {x: 1.0, y: 2.0}}
		steps: []
	}
	good: {
		vectors: {a: {x: 1.0, y: 2.0}}
		steps: [{op: "unit", operands: ["a"]}]
	}
}
`)
	result, errs := LoadDir(dir, LoadModeCollectAll)
	assert.Len(t, errs, 2)
	require.Len(t, result.Scenarios, 1)
	assert.Equal(t, "good", result.Scenarios[0].Name)
}

func TestLoadDirMissing(t *testing.T) {
	_, errs := LoadDir(filepath.Join(t.TempDir(), "absent"), LoadModeFailFast)
	require.Len(t, errs, 1)
	le, ok := errs[0].(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotFound, le.Code)
}

func TestLoadDirNoCUEFiles(t *testing.T) {
	_, errs := LoadDir(t.TempDir(), LoadModeFailFast)
	require.Len(t, errs, 1)
	le, ok := errs[0].(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNoFiles, le.Code)
}

func TestBoostAliasIsAccepted(t *testing.T) {
	dir := writeScenario(t, `
scenario: boosts: {
	vectors: {
		p:    {px: 3.0, py: 0.0, pz: 0.0, E: 5.0}
		beta: {x: 0.1, y: 0.0, z: 0.0}
	}
	steps: [{op: "boost", operands: ["p", "beta"]}]
}
`)
	_, errs := LoadDir(dir, LoadModeFailFast)
	assert.Empty(t, errs)
}
