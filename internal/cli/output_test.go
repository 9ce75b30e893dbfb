package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitErrorCodes(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad path")))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "scenario failed")))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))
}

func TestExitErrorWrapping(t *testing.T) {
	inner := errors.New("no such file")
	err := WrapExitError(ExitCommandError, "opening database", inner)
	assert.Equal(t, "opening database: no such file", err.Error())
	assert.ErrorIs(t, err, inner)

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestFormatterSuccessJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}
	require.NoError(t, f.Success(map[string]int{"answer": 42}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
}

func TestFormatterErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}
	require.NoError(t, f.Error("E103", "unknown operation", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E103", resp.Error.Code)
}

func TestFormatterErrorText(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf}
	require.NoError(t, f.Error("E103", "unknown operation", nil))
	assert.Equal(t, "Error [E103]: unknown operation\n", buf.String())
}

func TestVerboseLogGoesToErrWriter(t *testing.T) {
	var out, diag bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out, ErrWriter: &diag, Verbose: true}
	f.VerboseLog("loaded %d scenarios", 3)
	assert.Empty(t, out.String())
	assert.Equal(t, "loaded 3 scenarios\n", diag.String())

	f.Verbose = false
	diag.Reset()
	f.VerboseLog("suppressed")
	assert.Empty(t, diag.String())
}
