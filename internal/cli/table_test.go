package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourvec/fourvec/internal/dispatch"
)

func TestTableDotPlanarGolden(t *testing.T) {
	out, err := executeCommand(t, "table", "--op", "dot", "--dim", "2")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "table_dot_2d", []byte(out))
}

func TestTableJSONFilter(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "table", "--op", "boost_p4")
	require.NoError(t, err)

	var resp struct {
		Status string               `json:"status"`
		Data   []dispatch.EntryInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	// 4D only, two operands: 12 * 12 slots.
	assert.Len(t, resp.Data, 144)
	for _, e := range resp.Data {
		assert.Equal(t, "boost_p4", e.Op)
	}
}

func TestTableFullCount(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "table")
	require.NoError(t, err)

	var resp struct {
		Data []dispatch.EntryInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Data, 3028)
}

func TestTableUnknownOp(t *testing.T) {
	_, err := executeCommand(t, "table", "--op", "frobnicate")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTableInvalidDim(t *testing.T) {
	_, err := executeCommand(t, "table", "--dim", "5")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
