package dense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/dispatch"
)

var sigXY = coords.Signature{Azimuthal: coords.AzimuthalXY}

func TestNewRejectsLengthMismatch(t *testing.T) {
	_, err := New(sigXY, coords.FlavorGeneric, []float64{1, 2, 3}, []float64{4, 5})
	require.Error(t, err)
	var regErr *backend.RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "dense", regErr.Family)
}

func TestNewAllowsLengthOneBroadcast(t *testing.T) {
	v, err := New(sigXY, coords.FlavorGeneric, []float64{1, 2, 3}, []float64{4})
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
}

func TestCallAddColumns(t *testing.T) {
	a, err := New(sigXY, coords.FlavorGeneric, []float64{1, 2, 3}, []float64{10, 20, 30})
	require.NoError(t, err)
	b, err := New(sigXY, coords.FlavorGeneric, []float64{4, 5, 6}, []float64{40, 50, 60})
	require.NoError(t, err)

	out, err := dispatch.Call("add", []backend.Vector{a, b}, nil)
	require.NoError(t, err)
	sum := out.(*Vec)
	assert.Equal(t, []float64{5, 7, 9}, sum.Columns()[0])
	assert.Equal(t, []float64{50, 70, 90}, sum.Columns()[1])
}

func TestCallScalarResultIsColumn(t *testing.T) {
	a, err := New(sigXY, coords.FlavorGeneric, []float64{3, 0}, []float64{4, 5})
	require.NoError(t, err)

	out, err := dispatch.Call("dot", []backend.Vector{a, a}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 25}, out.([]float64))
}

func TestCallBooleanResultIsColumn(t *testing.T) {
	a, err := New(sigXY, coords.FlavorGeneric, []float64{1, 1}, []float64{2, 2})
	require.NoError(t, err)
	b, err := New(sigXY, coords.FlavorGeneric, []float64{1, 9}, []float64{2, 2})
	require.NoError(t, err)

	out, err := dispatch.Call("equal", []backend.Vector{a, b}, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, out.([]bool))
}

func TestCallConvertsKindsPerColumn(t *testing.T) {
	sigRhoPhi := coords.Signature{Azimuthal: coords.AzimuthalRhoPhi}
	a, err := New(sigXY, coords.FlavorGeneric, []float64{3, 0}, []float64{4, 1})
	require.NoError(t, err)
	b, err := New(sigRhoPhi, coords.FlavorGeneric, []float64{1, 2}, []float64{0, 0})
	require.NoError(t, err)

	out, err := dispatch.Call("add", []backend.Vector{a, b}, nil)
	require.NoError(t, err)
	sum := out.(*Vec)
	assert.InDelta(t, 4, sum.Columns()[0][0], 1e-12)
	assert.InDelta(t, 2, sum.Columns()[0][1], 1e-12)
	assert.InDelta(t, 4, sum.Columns()[1][0], 1e-12)
	assert.InDelta(t, 1, sum.Columns()[1][1], 1e-12)
}
