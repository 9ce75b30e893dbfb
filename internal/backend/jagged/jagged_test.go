package jagged

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/backend/scalar"
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/dispatch"
)

var sigXY = coords.Signature{Azimuthal: coords.AzimuthalXY}

func mustScalarVec(t *testing.T) backend.Vector {
	t.Helper()
	v, err := scalar.New(sigXY, coords.FlavorGeneric, 1, 2)
	require.NoError(t, err)
	return v
}

func TestCallAddRowByRow(t *testing.T) {
	a, err := New(sigXY, coords.FlavorGeneric,
		[][]float64{{1, 2}, {3}},
		[][]float64{{10, 20}, {30}})
	require.NoError(t, err)
	b, err := New(sigXY, coords.FlavorGeneric,
		[][]float64{{4, 5}, {6}},
		[][]float64{{40, 50}, {60}})
	require.NoError(t, err)

	out, err := dispatch.Call("add", []backend.Vector{a, b}, nil)
	require.NoError(t, err)
	sum := out.(*Vec)
	assert.Equal(t, [][]float64{{5, 7}, {9}}, sum.Columns()[0])
	assert.Equal(t, [][]float64{{50, 70}, {90}}, sum.Columns()[1])
}

func TestCallBroadcastsSingleRow(t *testing.T) {
	a, err := New(sigXY, coords.FlavorGeneric,
		[][]float64{{1, 2}, {3, 4, 5}},
		[][]float64{{1, 2}, {3, 4, 5}})
	require.NoError(t, err)
	offset, err := New(sigXY, coords.FlavorGeneric,
		[][]float64{{10}},
		[][]float64{{100}})
	require.NoError(t, err)

	out, err := dispatch.Call("add", []backend.Vector{a, offset}, nil)
	require.NoError(t, err)
	sum := out.(*Vec)
	assert.Equal(t, [][]float64{{11, 12}, {13, 14, 15}}, sum.Columns()[0])
	assert.Equal(t, [][]float64{{101, 102}, {103, 104, 105}}, sum.Columns()[1])
}

func TestCallScalarResultKeepsRowStructure(t *testing.T) {
	a, err := New(sigXY, coords.FlavorGeneric,
		[][]float64{{3, 0}, {1}},
		[][]float64{{4, 5}, {0}})
	require.NoError(t, err)

	out, err := dispatch.Call("dot", []backend.Vector{a, a}, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{25, 25}, {1}}, out.([][]float64))
}

func TestCallRejectsMixedFamilies(t *testing.T) {
	a, err := New(sigXY, coords.FlavorGeneric, [][]float64{{1}}, [][]float64{{2}})
	require.NoError(t, err)
	other := mustScalarVec(t)

	_, err = dispatch.Call("add", []backend.Vector{a, other}, nil)
	require.Error(t, err)
	assert.True(t, dispatch.IsIncompatibleBackend(err))
}
