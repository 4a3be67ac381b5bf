// Package results persists benchmark measurements in a SQLite database
// under the data directory and exports them as CSV or JSON. Only
// benchmark runs are persisted here; the hash table itself never is.
package results

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tidyware/stockroom/pkg/types"
)

// dbFileName is the SQLite file created inside the data directory.
const dbFileName = "stockroom.db"

// Store is a SQLite-backed archive of benchmark results.
type Store struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
}

// NewStore creates a detached store; call Attach with a data directory
// before use.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (creating if needed) the results database under dataDir
// and ensures the schema exists. Returns ErrAlreadyAttached when called
// twice.
func (s *Store) Attach(dataDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}

	for _, stmt := range []string{createBenchResults, createRunIndex} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	s.db = db
	s.attached = true
	return nil
}

// Detach closes the database. After Detach all operations return
// ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	s.attached = false
	return s.db.Close()
}

// Save persists one benchmark result under a fresh UUID v7 result ID.
func (s *Store) Save(res types.BenchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	return s.insert(res)
}

// SaveAll persists a batch of results in one transaction.
func (s *Store) SaveAll(results []types.BenchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, res := range results {
		if err := insertInto(tx, res); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) insert(res types.BenchResult) error {
	return insertInto(s.db, res)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertInto(e execer, res types.BenchResult) error {
	resultID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating result ID: %w", err)
	}

	createdAt := res.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = e.Exec(
		`INSERT INTO bench_results
		 (result_id, run_id, n, repetition, insert_ms, load_factor, collisions,
		  search_hit_ms, search_miss_ms, delete_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		resultID.String(), res.RunID, res.N, res.Repetition,
		res.InsertMillis, res.LoadFactor, res.Collisions,
		res.SearchHitMillis, res.SearchMissMillis, res.DeleteMillis,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving result for run %s: %w", res.RunID, err)
	}
	return nil
}

// Fetch returns every stored result ordered by N, then repetition,
// then recording time.
func (s *Store) Fetch() ([]types.BenchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.query(
		`SELECT run_id, n, repetition, insert_ms, load_factor, collisions,
		        search_hit_ms, search_miss_ms, delete_ms, created_at
		 FROM bench_results ORDER BY n, repetition, created_at`)
}

// FetchRun returns the results recorded under one run ID.
func (s *Store) FetchRun(runID string) ([]types.BenchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.query(
		`SELECT run_id, n, repetition, insert_ms, load_factor, collisions,
		        search_hit_ms, search_miss_ms, delete_ms, created_at
		 FROM bench_results WHERE run_id = ? ORDER BY n, repetition`, runID)
}

// Averages returns per-N averages over every stored result. Returns
// ErrNoResults when the store is empty.
func (s *Store) Averages() ([]types.BenchAverage, error) {
	all, err := s.Fetch()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, types.ErrNoResults
	}
	return types.Averages(all), nil
}

func (s *Store) query(q string, args ...any) ([]types.BenchResult, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []types.BenchResult
	for rows.Next() {
		var res types.BenchResult
		var createdAt string
		if err := rows.Scan(
			&res.RunID, &res.N, &res.Repetition, &res.InsertMillis,
			&res.LoadFactor, &res.Collisions, &res.SearchHitMillis,
			&res.SearchMissMillis, &res.DeleteMillis, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			res.CreatedAt = ts
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating result rows: %w", err)
	}
	return results, nil
}
