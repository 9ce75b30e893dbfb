package trace

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourvec/fourvec/pkg/vector"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "trace.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord() Record {
	return Record{
		Op: "add",
		Operands: []Operand{
			RecordOperand(vector.XY(3, 4)),
			RecordOperand(vector.XY(5, 12)),
		},
		Result: VectorResult(vector.XY(8, 16)),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	token, err := s.BeginRun(ctx, "smoke")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := s.Append(ctx, token, 0, sampleRecord())
	require.NoError(t, err)
	assert.Len(t, id, 64, "sha256 hex")

	recs, err := s.Records(ctx, token)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, id, recs[0].RecordID)
	assert.Equal(t, "add", recs[0].Record.Op)
	assert.Equal(t, []float64{8, 16}, recs[0].Record.Result.Vector.Elements)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "smoke", runs[0].Scenario)
}

func TestStoreOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.db")
	s1, err := Open(path)
	require.NoError(t, err)
	token, err := s1.BeginRun(context.Background(), "first")
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	recs, err := s2.Records(context.Background(), token)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecordIDStableAcrossRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	t1, err := s.BeginRun(ctx, "a")
	require.NoError(t, err)
	t2, err := s.BeginRun(ctx, "b")
	require.NoError(t, err)
	require.NotEqual(t, t1, t2, "run identity is temporal, not content-derived")

	id1, err := s.Append(ctx, t1, 0, sampleRecord())
	require.NoError(t, err)
	id2, err := s.Append(ctx, t2, 0, sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, id1, id2, "record identity is content-derived")
}

func TestVerifyDetectsTampering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	token, err := s.BeginRun(ctx, "tamper")
	require.NoError(t, err)
	id, err := s.Append(ctx, token, 0, sampleRecord())
	require.NoError(t, err)

	bad, err := s.Verify(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, bad)

	_, err = s.db.Exec("UPDATE records SET payload = ? WHERE record_id = ?", `{"op":"sub"}`, id)
	require.NoError(t, err)

	bad, err = s.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, bad)
}

func TestRecordCanonicalJSONCarriesNonFinite(t *testing.T) {
	nan := math.NaN()
	rec := Record{
		Op:       "unit",
		Operands: []Operand{RecordOperand(vector.XY(0, 0))},
		Result:   ScalarResult(nan),
	}
	payload, err := rec.CanonicalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"NaN"`)

	back, err := ParseRecord(payload)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(*back.Result.Scalar))
}

func TestRecordIDChangesWithParams(t *testing.T) {
	base := Record{
		Op:       "rotate_z",
		Operands: []Operand{RecordOperand(vector.XY(1, 0))},
		Params:   []float64{0.5},
		Result:   VectorResult(vector.XY(1, 0).RotateZ(0.5)),
	}
	other := base
	other.Params = []float64{0.6}
	other.Result = VectorResult(vector.XY(1, 0).RotateZ(0.6))

	assert.NotEqual(t, MustRecordID(base), MustRecordID(other))
}
