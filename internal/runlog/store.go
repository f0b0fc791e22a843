package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	scraped INTEGER NOT NULL,
	reused INTEGER NOT NULL,
	looked INTEGER NOT NULL,
	unresolved INTEGER NOT NULL,
	regenerated INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
`

// Summary describes one completed pipeline run.
type Summary struct {
	StartedAt   time.Time
	Duration    time.Duration
	Scraped     int
	Reused      int
	Looked      int
	Unresolved  int
	Regenerated bool
}

// Store manages run history persistence backed by SQLite. A nil Store is
// valid and drops every write, so history can be disabled in config.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one run summary.
func (s *Store) Record(ctx context.Context, sum Summary) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, duration_ms, scraped, reused, looked, unresolved, regenerated)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sum.StartedAt.UnixMilli(),
		sum.Duration.Milliseconds(),
		sum.Scraped,
		sum.Reused,
		sum.Looked,
		sum.Unresolved,
		boolToInt(sum.Regenerated),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit run summaries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Summary, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT started_at, duration_ms, scraped, reused, looked, unresolved, regenerated
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var (
			startedAt   int64
			durationMS  int64
			regenerated int
			sum         Summary
		)
		if err := rows.Scan(&startedAt, &durationMS, &sum.Scraped, &sum.Reused, &sum.Looked, &sum.Unresolved, &regenerated); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		sum.StartedAt = time.UnixMilli(startedAt)
		sum.Duration = time.Duration(durationMS) * time.Millisecond
		sum.Regenerated = regenerated != 0
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return summaries, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
