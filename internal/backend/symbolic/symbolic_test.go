package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/dispatch"
)

var sigXY = coords.Signature{Azimuthal: coords.AzimuthalXY}

func TestNewUsesFieldNamesAsSymbols(t *testing.T) {
	v, err := New(sigXY, coords.FlavorGeneric)
	require.NoError(t, err)
	exprs := v.Exprs()
	require.Len(t, exprs, 2)
	assert.Equal(t, "x", exprs[0].String())
	assert.Equal(t, "y", exprs[1].String())
}

func TestCallAddBuildsExpressions(t *testing.T) {
	a, err := FromExprs(sigXY, coords.FlavorGeneric, Symbol("x1"), Symbol("y1"))
	require.NoError(t, err)
	b, err := FromExprs(sigXY, coords.FlavorGeneric, Symbol("x2"), Symbol("y2"))
	require.NoError(t, err)

	out, err := dispatch.Call("add", []backend.Vector{a, b}, nil)
	require.NoError(t, err)
	sum := out.(*Vec)
	assert.Equal(t, "(x1 + x2)", sum.Exprs()[0].String())
	assert.Equal(t, "(y1 + y2)", sum.Exprs()[1].String())
}

func TestCallRecordsConversionChain(t *testing.T) {
	sigRhoPhi := coords.Signature{Azimuthal: coords.AzimuthalRhoPhi}
	v, err := New(sigRhoPhi, coords.FlavorGeneric)
	require.NoError(t, err)

	out, err := dispatch.Call("unit", []backend.Vector{v}, nil)
	require.NoError(t, err)
	exprs := out.(*Vec).Exprs()
	require.Len(t, exprs, 2)
	// rho cos(phi) appears inside the normalized x component
	assert.Contains(t, exprs[0].String(), "(rho * cos(phi))")
}

func TestCallScalarResultIsExpression(t *testing.T) {
	v, err := New(sigXY, coords.FlavorGeneric)
	require.NoError(t, err)

	out, err := dispatch.Call("dot", []backend.Vector{v, v}, nil)
	require.NoError(t, err)
	expr, ok := out.(*Expr)
	require.True(t, ok)
	assert.Equal(t, "((x * x) + (y * y))", expr.String())
}

func TestExprRendering(t *testing.T) {
	e := Infix("+", Call("sqrt", Const(2)), Symbol("z"))
	assert.Equal(t, "(sqrt(2) + z)", e.String())
}
