package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyGeneric(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   string
	}{
		{"cartesian 2D", []string{"x", "y"}, "xy"},
		{"polar 2D", []string{"rho", "phi"}, "rhophi"},
		{"cartesian 3D", []string{"x", "y", "z"}, "xy-z"},
		{"theta 3D", []string{"x", "y", "theta"}, "xy-theta"},
		{"eta 3D", []string{"rho", "phi", "eta"}, "rhophi-eta"},
		{"cartesian 4D", []string{"x", "y", "z", "t"}, "xy-z-t"},
		{"tau 4D", []string{"rho", "phi", "eta", "tau"}, "rhophi-eta-tau"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, flavor, err := Classify(tt.fields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sig.String())
			assert.Equal(t, FlavorGeneric, flavor)
		})
	}
}

func TestClassifyMomentum(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   string
	}{
		{"px py", []string{"px", "py"}, "xy"},
		{"pt phi", []string{"pt", "phi"}, "rhophi"},
		{"px py pz E", []string{"px", "py", "pz", "E"}, "xy-z-t"},
		{"pt phi eta M", []string{"pt", "phi", "eta", "M"}, "rhophi-eta-tau"},
		{"energy synonym", []string{"px", "py", "pz", "energy"}, "xy-z-t"},
		{"mass synonym", []string{"px", "py", "pz", "mass"}, "xy-z-tau"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, flavor, err := Classify(tt.fields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sig.String())
			assert.Equal(t, FlavorMomentum, flavor)
		})
	}
}

func TestClassifyOrderIndependent(t *testing.T) {
	a, fa, err := Classify([]string{"t", "x", "z", "y"})
	require.NoError(t, err)
	b, fb, err := Classify([]string{"x", "y", "z", "t"})
	require.NoError(t, err)
	assert.Equal(t, b, a)
	assert.Equal(t, fb, fa)
}

func TestClassifyCollisions(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		// offending field names that must appear in the error
		offending []string
	}{
		{"x and px", []string{"x", "px", "y"}, []string{"px", "x"}},
		{"t and E", []string{"x", "y", "z", "t", "E"}, []string{"E", "t"}},
		{"t and tau", []string{"x", "y", "z", "t", "tau"}, []string{"t", "tau"}},
		{"z and eta", []string{"x", "y", "z", "eta"}, []string{"eta", "z"}},
		{"cartesian and polar", []string{"x", "y", "rho", "phi"}, []string{"phi", "rho", "x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Classify(tt.fields)
			require.Error(t, err)

			var ce *ConfigurationError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, ErrCodeAmbiguousFields, ce.Code)
			assert.Equal(t, tt.offending, ce.Fields)
			for _, f := range tt.offending {
				assert.Contains(t, err.Error(), f)
			}
		})
	}
}

func TestClassifyUnknownFields(t *testing.T) {
	_, _, err := Classify([]string{"x", "y", "weight"})
	require.Error(t, err)

	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeUnknownField, ce.Code)
	assert.Equal(t, []string{"weight"}, ce.Fields)
}

func TestClassifyIncomplete(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{"x without y", []string{"x"}},
		{"phi without rho", []string{"phi"}},
		{"temporal without longitudinal", []string{"x", "y", "t"}},
		{"no fields", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Classify(tt.fields)
			require.Error(t, err)

			var ce *ConfigurationError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, ErrCodeIncompleteAxis, ce.Code)
		})
	}
}

func TestIsConfigurationError(t *testing.T) {
	_, _, err := Classify([]string{"x", "px", "y"})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.False(t, IsConfigurationError(assert.AnError))
}

func TestFieldOrder(t *testing.T) {
	ordered, sig, flavor, err := FieldOrder([]string{"t", "z", "y", "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z", "t"}, ordered)
	assert.Equal(t, "xy-z-t", sig.String())
	assert.Equal(t, FlavorGeneric, flavor)

	ordered, sig, flavor, err = FieldOrder([]string{"M", "eta", "phi", "pt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pt", "phi", "eta", "M"}, ordered)
	assert.Equal(t, "rhophi-eta-tau", sig.String())
	assert.Equal(t, FlavorMomentum, flavor)
}
