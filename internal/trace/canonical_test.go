package trace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalSortsKeysUTF16(t *testing.T) {
	// U+E000 vs U+10000: the surrogate pair sorts first under UTF-16
	// code units, after under UTF-8 bytes.
	got, err := MarshalCanonical(map[string]any{
		"\uE000":     1,
		"\U00010000": 2,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"`+"\U00010000"+`":2,"`+"\uE000"+`":1}`, string(got))
}

func TestMarshalCanonicalNoHTMLEscaping(t *testing.T) {
	got, err := MarshalCanonical(map[string]any{"cmp": "a<b>&c"})
	require.NoError(t, err)
	assert.Equal(t, `{"cmp":"a<b>&c"}`, string(got))
}

func TestMarshalCanonicalNFCNormalizes(t *testing.T) {
	// e + combining acute normalizes to the precomposed form.
	decomposed := "e\u0301"
	got, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(got))
}

func TestMarshalCanonicalFloats(t *testing.T) {
	got, err := MarshalCanonical([]float64{1.5, -0.25, 3})
	require.NoError(t, err)
	assert.Equal(t, "[1.5,-0.25,3]", string(got))

	_, err = MarshalCanonical(math.NaN())
	require.Error(t, err)
	_, err = MarshalCanonical(math.Inf(1))
	require.Error(t, err)
}

func TestMarshalCanonicalRejectsNull(t *testing.T) {
	_, err := MarshalCanonical(nil)
	require.Error(t, err)
	_, err = MarshalCanonical(map[string]any{"x": nil})
	require.Error(t, err)
}

func TestMarshalCanonicalKeepsLineSeparatorsLiteral(t *testing.T) {
	got, err := MarshalCanonical("a\u2028b\u2029c")
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\u2029c\"", string(got))

	// A literal backslash followed by the text "u2028" must stay escaped.
	got, err = MarshalCanonical(`a\u2028`)
	require.NoError(t, err)
	assert.Equal(t, `"a\\u2028"`, string(got))
}

func TestMarshalCanonicalDeterministic(t *testing.T) {
	obj := map[string]any{"b": 1, "a": []any{"x", 2.5, true}, "c": map[string]any{"z": 1, "y": 2}}
	first, err := MarshalCanonical(obj)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := MarshalCanonical(obj)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}
