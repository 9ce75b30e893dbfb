package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourvec/fourvec/internal/scenario"
)

func smokeScenario() scenario.Scenario {
	return scenario.Scenario{
		Name: "smoke",
		Vectors: map[string]map[string]float64{
			"a": {"x": 3, "y": 4},
			"b": {"x": 5, "y": 12},
		},
		Steps: []scenario.Step{
			{Op: "add", Operands: []string{"a", "b"}},
			{Op: "dot", Operands: []string{"a", "a"}},
			{Op: "scale", Operands: []string{"a"}, Params: []float64{2}},
		},
	}
}

func TestRunWithGoldenSmoke(t *testing.T) {
	res := RunWithGolden(t, smokeScenario())
	assert.True(t, res.Pass)
}

func TestSnapshotIsDeterministic(t *testing.T) {
	first := RunWithGolden(t, smokeScenario())
	second := RunWithGolden(t, smokeScenario())

	snap1, err := Snapshot(first)
	require.NoError(t, err)
	snap2, err := Snapshot(second)
	require.NoError(t, err)
	assert.Equal(t, snap1, snap2)
}
