package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalAddText(t *testing.T) {
	out, err := executeCommand(t, "eval", "add", "--vec", "x=3,y=4", "--vec", "x=5,y=12")
	require.NoError(t, err)
	assert.Contains(t, out, "8")
	assert.Contains(t, out, "16")
}

func TestEvalDotJSON(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "eval", "dot",
		"--vec", "x=3,y=4", "--vec", "x=3,y=4")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   EvalOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "scalar", resp.Data.Class)
	require.NotNil(t, resp.Data.Scalar)
	assert.Equal(t, 25.0, *resp.Data.Scalar)
}

func TestEvalVectorJSONCarriesKind(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "eval", "add",
		"--vec", "pt=3,phi=0,eta=0,E=5", "--vec", "x=1,y=0,z=0,t=1")
	require.NoError(t, err)

	var resp struct {
		Data EvalOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "vector", resp.Data.Class)
	require.NotNil(t, resp.Data.Vector)
	assert.True(t, resp.Data.Vector.Momentum, "momentum operand should make the sum a momentum")
	assert.Len(t, resp.Data.Vector.Elements, 4)
}

func TestEvalBoostAlias(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "eval", "boost",
		"--vec", "px=0,py=0,pz=3,E=5", "--vec", "x=0,y=0,z=-0.6")
	require.NoError(t, err)

	var resp struct {
		Data EvalOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Data.Vector)
	require.Len(t, resp.Data.Vector.Elements, 4)
	assert.InDelta(t, 4.0, resp.Data.Vector.Elements[3], 1e-9)
}

func TestEvalUnknownOp(t *testing.T) {
	_, err := executeCommand(t, "eval", "frobnicate", "--vec", "x=1,y=2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEvalMalformedVector(t *testing.T) {
	_, err := executeCommand(t, "eval", "unit", "--vec", "x=1,y")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "malformed field")
}

func TestEvalAmbiguousFields(t *testing.T) {
	_, err := executeCommand(t, "eval", "unit", "--vec", "x=1,y=2,theta=0.5,eta=1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEvalWrongParamCount(t *testing.T) {
	_, err := executeCommand(t, "eval", "rotate_z", "--vec", "x=1,y=0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConvertText(t *testing.T) {
	out, err := executeCommand(t, "convert", "rhophi", "--vec", "x=3,y=4")
	require.NoError(t, err)
	assert.Contains(t, out, "5")
}

func TestConvertJSON(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "convert", "rhophi", "--vec", "x=3,y=4")
	require.NoError(t, err)

	var resp struct {
		Data VectorOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "rhophi", resp.Data.Kind)
	require.Len(t, resp.Data.Elements, 2)
	assert.InDelta(t, 5.0, resp.Data.Elements[0], 1e-12)
}

func TestConvertUnknownKind(t *testing.T) {
	_, err := executeCommand(t, "convert", "spherical", "--vec", "x=3,y=4")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
