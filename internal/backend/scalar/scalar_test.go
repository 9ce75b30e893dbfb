package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/coords"
)

var (
	sigXY   = coords.Signature{Azimuthal: coords.AzimuthalXY}
	sigXYZT = coords.Signature{
		Azimuthal:    coords.AzimuthalXY,
		Longitudinal: coords.LongitudinalZ,
		Temporal:     coords.TemporalT,
	}
)

func TestNewValidatesElementCount(t *testing.T) {
	_, err := New(sigXY, coords.FlavorGeneric, 1, 2, 3)
	require.Error(t, err)
	var regErr *backend.RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "scalar", regErr.Family)
}

func TestNewRejectsInvalidSignature(t *testing.T) {
	bad := coords.Signature{Azimuthal: coords.AzimuthalXY, Temporal: coords.TemporalT}
	_, err := New(bad, coords.FlavorGeneric, 1, 2, 3)
	require.Error(t, err)
}

func TestFamilyRejectsNonFloatElements(t *testing.T) {
	_, err := Family().New(sigXY, coords.FlavorGeneric, []any{1.0, "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not float64")
}

func TestFloatsCopies(t *testing.T) {
	v := MustNew(sigXY, coords.FlavorGeneric, 3, 4)
	fs := v.Floats()
	fs[0] = 99
	assert.Equal(t, []float64{3, 4}, v.Floats())
}

func TestStringUsesFlavorFieldNames(t *testing.T) {
	generic := MustNew(sigXYZT, coords.FlavorGeneric, 1, 2, 3, 9)
	momentum := MustNew(sigXYZT, coords.FlavorMomentum, 1, 2, 3, 9)
	assert.Equal(t, "Vec(x=1, y=2, z=3, t=9)", generic.String())
	assert.Equal(t, "Vec(px=1, py=2, pz=3, E=9)", momentum.String())
}

func TestSameFamily(t *testing.T) {
	a := MustNew(sigXY, coords.FlavorGeneric, 1, 2)
	b := MustNew(sigXY, coords.FlavorGeneric, 3, 4)
	assert.True(t, backend.SameFamily(a, b))
	assert.True(t, backend.SameFamily())
}
