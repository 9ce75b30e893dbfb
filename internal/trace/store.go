package trace

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - initial schema (pre-migration)
// 1 - added idx_records_op
const currentSchemaVersion = 1

// Store persists trace runs and records in SQLite, WAL mode for
// concurrent reads during writes.
type Store struct {
	db *sql.DB
}

// Open creates or opens the trace database at path. Pragmas and schema
// migrations are applied on every open; the call is idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open trace database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to trace database: %w", err)
	}

	// SQLite allows one writer; a single pooled connection avoids
	// SQLITE_BUSY under concurrent appends.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return runMigrations(db)
}

func runMigrations(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version < 1 {
		// Databases created before the op index existed get it here;
		// fresh ones already have it from schema.sql.
		if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_records_op ON records(op)"); err != nil {
			return fmt.Errorf("migrate to v1: %w", err)
		}
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// Run is one persisted harness run.
type Run struct {
	Token     string
	Scenario  string
	CreatedAt time.Time
}

// StoredRecord pairs a record with its identity and position.
type StoredRecord struct {
	RecordID string
	RunToken string
	Seq      int64
	Record   Record
}

// BeginRun registers a new run for the named scenario and returns its
// token, a random UUID (run identity is temporal, not content-derived:
// two identical runs are still distinct runs).
func (s *Store) BeginRun(ctx context.Context, scenario string) (string, error) {
	token := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (run_token, scenario, created_at) VALUES (?, ?, ?)",
		token, scenario, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return token, nil
}

// Append persists one record at the next position of the run and
// returns its content-addressed ID.
func (s *Store) Append(ctx context.Context, runToken string, seq int64, rec Record) (string, error) {
	payload, err := rec.CanonicalJSON()
	if err != nil {
		return "", fmt.Errorf("append record: %w", err)
	}
	id := hashWithDomain(DomainRecord, payload)
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO records (record_id, run_token, seq, op, payload) VALUES (?, ?, ?, ?, ?)",
		id, runToken, seq, rec.Op, string(payload))
	if err != nil {
		return "", fmt.Errorf("append record: %w", err)
	}
	return id, nil
}

// Records returns the run's records in sequence order.
func (s *Store) Records(ctx context.Context, runToken string) ([]StoredRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT record_id, seq, payload FROM records WHERE run_token = ? ORDER BY seq",
		runToken)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []StoredRecord
	for rows.Next() {
		var sr StoredRecord
		var payload string
		if err := rows.Scan(&sr.RecordID, &sr.Seq, &payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		sr.RunToken = runToken
		sr.Record, err = ParseRecord([]byte(payload))
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", sr.RecordID, err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// Runs lists all runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT run_token, scenario, created_at FROM runs ORDER BY created_at DESC, run_token")
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.Token, &r.Scenario, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", r.Token, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Verify re-hashes every payload in the run against its stored
// record_id and returns the IDs that no longer match. An empty slice
// means the run is intact.
func (s *Store) Verify(ctx context.Context, runToken string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT record_id, payload FROM records WHERE run_token = ? ORDER BY seq",
		runToken)
	if err != nil {
		return nil, fmt.Errorf("verify run: %w", err)
	}
	defer rows.Close()

	var mismatched []string
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if hashWithDomain(DomainRecord, []byte(payload)) != id {
			mismatched = append(mismatched, id)
		}
	}
	return mismatched, rows.Err()
}
