package harness

import (
	"bytes"
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/fourvec/fourvec/internal/scenario"
)

// Snapshot renders the run's records as newline-terminated canonical
// JSON, one record per line. The rendering carries no run token or
// timestamp, so identical scenarios snapshot identically across runs.
func Snapshot(res *Result) ([]byte, error) {
	var buf bytes.Buffer
	for _, step := range res.Steps {
		payload, err := step.Record.CanonicalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(payload)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// RunWithGolden executes the scenario without persistence and compares
// its record snapshot against testdata/golden/{scenario.Name}.golden.
// Regenerate golden files with:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, s scenario.Scenario) *Result {
	t.Helper()

	res, err := New(nil).Run(context.Background(), s)
	require.NoError(t, err)

	snapshot, err := Snapshot(res)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, snapshot)
	return res
}
