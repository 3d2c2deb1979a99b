package bench

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoResults indicates no results are recorded for the requested run.
var ErrNoResults = errors.New("no results recorded")

// Store keeps benchmark results in SQLite so runs can be compared over time.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// OpenStore opens (creating if needed) the result history at dbPath.
func OpenStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS results (
		run_id      TEXT NOT NULL,
		workload    TEXT NOT NULL,
		probe       TEXT NOT NULL,
		count       INTEGER NOT NULL,
		successes   INTEGER NOT NULL,
		elapsed_ns  INTEGER NOT NULL,
		ops_per_sec REAL NOT NULL,
		created_at  TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Path returns the database path.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save records results in a single transaction.
func (s *Store) Save(ctx context.Context, results []Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO results
		(run_id, workload, probe, count, successes, elapsed_ns, ops_per_sec, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		_, err := stmt.ExecContext(ctx,
			r.RunID, r.Workload, r.Probe, r.Count,
			int64(r.Successes), r.Elapsed.Nanoseconds(), r.OpsPerSec(),
			r.CreatedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("saving result %s/%s: %w", r.Workload, r.Probe, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing results: %w", err)
	}
	return nil
}

// History returns every recorded result for workload, oldest first.
func (s *Store) History(ctx context.Context, workload string) ([]Result, error) {
	return s.query(ctx,
		`SELECT run_id, workload, probe, count, successes, elapsed_ns, created_at
		FROM results WHERE workload = ? ORDER BY rowid`, workload)
}

// Run returns the results recorded under runID, in recording order.
func (s *Store) Run(ctx context.Context, runID string) ([]Result, error) {
	results, err := s.query(ctx,
		`SELECT run_id, workload, probe, count, successes, elapsed_ns, created_at
		FROM results WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: run %s", ErrNoResults, runID)
	}
	return results, nil
}

// Runs returns the recorded run IDs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id FROM results GROUP BY run_id ORDER BY MIN(rowid)`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r         Result
			successes int64
			elapsed   int64
			created   string
		)
		if err := rows.Scan(&r.RunID, &r.Workload, &r.Probe, &r.Count, &successes, &elapsed, &created); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Successes = uint64(successes)
		r.Elapsed = time.Duration(elapsed)
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", created, err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
