package harness

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourvec/fourvec/internal/scenario"
	"github.com/fourvec/fourvec/internal/trace"
)

func openTestStore(t *testing.T) *trace.Store {
	t.Helper()
	st, err := trace.Open(filepath.Join(t.TempDir(), "trace.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func triangleScenario() scenario.Scenario {
	return scenario.Scenario{
		Name: "triangle",
		Vectors: map[string]map[string]float64{
			"a": {"x": 3, "y": 4},
			"b": {"x": 5, "y": 12},
		},
		Steps: []scenario.Step{
			{
				Op:       "add",
				Operands: []string{"a", "b"},
				Expect:   &scenario.Expect{Kind: "xy", Elements: []float64{8, 16}},
			},
			{
				Op:       "dot",
				Operands: []string{"a", "a"},
				Expect:   &scenario.Expect{Scalar: floatPtr(25)},
			},
		},
	}
}

func TestRunExecutesStepsAndChecksExpectations(t *testing.T) {
	st := openTestStore(t)
	res, err := New(st).Run(context.Background(), triangleScenario())
	require.NoError(t, err)

	assert.True(t, res.Pass)
	assert.NotEmpty(t, res.RunToken)
	require.Len(t, res.Steps, 2)
	for _, step := range res.Steps {
		assert.Len(t, step.RecordID, 64)
		assert.Empty(t, step.Failures)
	}
	assert.Equal(t, "add", res.Steps[0].Op)
	require.NotNil(t, res.Steps[1].Record.Result.Scalar)
	assert.Equal(t, 25.0, *res.Steps[1].Record.Result.Scalar)
}

func TestRunPersistsRecords(t *testing.T) {
	st := openTestStore(t)
	res, err := New(st).Run(context.Background(), triangleScenario())
	require.NoError(t, err)

	stored, err := st.Records(context.Background(), res.RunToken)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, res.Steps[0].RecordID, stored[0].RecordID)
	assert.Equal(t, "add", stored[0].Record.Op)
	assert.Equal(t, "dot", stored[1].Record.Op)

	mismatched, err := st.Verify(context.Background(), res.RunToken)
	require.NoError(t, err)
	assert.Empty(t, mismatched)
}

func TestRunWithoutStoreComputesSameRecordIDs(t *testing.T) {
	st := openTestStore(t)
	persisted, err := New(st).Run(context.Background(), triangleScenario())
	require.NoError(t, err)

	ephemeral, err := New(nil).Run(context.Background(), triangleScenario())
	require.NoError(t, err)

	assert.Empty(t, ephemeral.RunToken)
	require.Len(t, ephemeral.Steps, 2)
	for i := range ephemeral.Steps {
		assert.Equal(t, persisted.Steps[i].RecordID, ephemeral.Steps[i].RecordID)
	}
}

func TestRunCollectsExpectationFailures(t *testing.T) {
	s := triangleScenario()
	s.Steps[1].Expect = &scenario.Expect{Scalar: floatPtr(24)}

	res, err := New(nil).Run(context.Background(), s)
	require.NoError(t, err)
	assert.False(t, res.Pass)
	assert.Empty(t, res.Steps[0].Failures)
	assert.NotEmpty(t, res.Steps[1].Failures)
}

func TestRunToleranceWidensComparison(t *testing.T) {
	s := scenario.Scenario{
		Name:    "tolerance",
		Vectors: map[string]map[string]float64{"a": {"rho": 5, "phi": 0.9272952180016122}},
		Steps: []scenario.Step{
			{
				Op:       "unit",
				Operands: []string{"a"},
				Expect:   &scenario.Expect{Kind: "xy", Elements: []float64{0.6, 0.8}, Tol: 1e-12},
			},
		},
	}
	res, err := New(nil).Run(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, res.Pass)
}

func TestRunBoostAlias(t *testing.T) {
	s := scenario.Scenario{
		Name: "boost_alias",
		Vectors: map[string]map[string]float64{
			"p":    {"px": 0, "py": 0, "pz": 3, "E": 5},
			"beta": {"x": 0, "y": 0, "z": -0.6},
		},
		Steps: []scenario.Step{
			{
				Op:       "boost",
				Operands: []string{"p", "beta"},
				Expect:   &scenario.Expect{Kind: "xy-z-t", Elements: []float64{0, 0, 0, 4}, Tol: 1e-9},
			},
		},
	}
	res, err := New(nil).Run(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, res.Pass, "failures: %v", res.Steps[0].Failures)
}

func TestRunBooleanExpectation(t *testing.T) {
	s := scenario.Scenario{
		Name:    "predicates",
		Vectors: map[string]map[string]float64{"p": {"px": 3, "py": 0, "pz": 0, "E": 5}},
		Steps: []scenario.Step{
			{Op: "is_timelike", Operands: []string{"p"}, Expect: &scenario.Expect{Bool: boolPtr(true)}},
			{Op: "is_spacelike", Operands: []string{"p"}, Expect: &scenario.Expect{Bool: boolPtr(false)}},
		},
	}
	res, err := New(nil).Run(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, res.Pass)
}

func TestRunRejectsBadVectorFields(t *testing.T) {
	s := scenario.Scenario{
		Name:    "bad_fields",
		Vectors: map[string]map[string]float64{"a": {"x": 1}},
		Steps:   []scenario.Step{{Op: "unit", Operands: []string{"a"}}},
	}
	_, err := New(nil).Run(context.Background(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `vector "a"`)
}

func TestRunRejectsWrongParamCount(t *testing.T) {
	s := scenario.Scenario{
		Name:    "bad_params",
		Vectors: map[string]map[string]float64{"a": {"x": 1, "y": 2}},
		Steps:   []scenario.Step{{Op: "rotate_z", Operands: []string{"a"}}},
	}
	_, err := New(nil).Run(context.Background(), s)
	require.Error(t, err)
}

func TestReportYAML(t *testing.T) {
	res, err := New(nil).Run(context.Background(), triangleScenario())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewReport(res).WriteYAML(&buf))

	out := buf.String()
	assert.Contains(t, out, "scenario: triangle")
	assert.Contains(t, out, "pass: true")
	assert.Contains(t, out, "op: add")
	assert.Contains(t, out, "elements: [8, 16]")
	assert.Contains(t, out, "scalar: 25")
}
