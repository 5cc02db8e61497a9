// Package storage provides SQLite-based persistence for detonation run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/blastgrid/internal/config"
)

// Run status values stored in the status column.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord represents a single detonation request and its outcome.
type RunRecord struct {
	ID          int64
	InputPath   string
	OutputPath  string
	TargetX     int
	TargetY     int
	Width       int
	Height      int
	Status      string // "ok" or "error"
	ErrorCode   string // Empty on success
	Detonations int
	Hits        int
	Kills       int
	CreatedAt   time.Time
}

// RunStats contains aggregated statistics over all recorded runs.
type RunStats struct {
	TotalRuns        int
	FailedRuns       int
	TotalDetonations int64
	TotalHits        int64
	TotalKills       int64
	MaxChain         int
	LastRun          time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			target_x INTEGER NOT NULL,
			target_y INTEGER NOT NULL,
			width INTEGER NOT NULL DEFAULT 0,
			height INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			error_code TEXT,
			detonations INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			kills INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(input_path);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a detonation run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunRecord) (int64, error) {
	var errorCode sql.NullString
	if run.ErrorCode != "" {
		errorCode = sql.NullString{String: run.ErrorCode, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (input_path, output_path, target_x, target_y, width, height, status, error_code, detonations, hits, kills)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.InputPath,
		run.OutputPath,
		run.TargetX,
		run.TargetY,
		run.Width,
		run.Height,
		run.Status,
		errorCode,
		run.Detonations,
		run.Hits,
		run.Kills,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, input_path, output_path, target_x, target_y, width, height,
		        status, error_code, detonations, hits, kills, created_at`

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RunsByInput retrieves the most recent runs for one input file.
func (s *Store) RunsByInput(inputPath string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE input_path = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		inputPath, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// scanRuns reads RunRecords from a result set.
func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var errorCode sql.NullString
		var createdAt any

		if err := rows.Scan(
			&r.ID,
			&r.InputPath,
			&r.OutputPath,
			&r.TargetX,
			&r.TargetY,
			&r.Width,
			&r.Height,
			&r.Status,
			&errorCode,
			&r.Detonations,
			&r.Hits,
			&r.Kills,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		if errorCode.Valid {
			r.ErrorCode = errorCode.String
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(detonations), 0),
		        COALESCE(SUM(hits), 0),
		        COALESCE(SUM(kills), 0),
		        COALESCE(MAX(detonations), 0)
		 FROM runs`,
		StatusError,
	).Scan(&stats.TotalRuns, &stats.FailedRuns, &stats.TotalDetonations,
		&stats.TotalHits, &stats.TotalKills, &stats.MaxChain)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	// Get last run
	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTime(lastRun)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
