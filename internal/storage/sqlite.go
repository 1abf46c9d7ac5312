// Package storage records finished Fish Grab runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only completed runs are stored; a game in progress is never saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a run lookup matches nothing.
var ErrNotFound = errors.New("storage: run not found")

// DefaultLimit is used when a non-positive limit is passed to TopRuns.
const DefaultLimit = 10

// Store manages the SQLite database connection for run records.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// Run is a single finished game.
type Run struct {
	ID        int64
	RunID     uuid.UUID
	Player    string
	Score     int
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows one writer; serialize SSH sessions on a single connection.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_rank ON runs(score DESC, moves ASC, duration_ms ASC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished run and returns the inserted row ID.
// A zero RunID is replaced with a fresh random one.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.RunID == uuid.Nil {
		run.RunID = uuid.New()
	}
	if run.Score < 0 || run.Moves < 0 || run.Duration < 0 {
		return 0, fmt.Errorf("storage: invalid run %s: negative score, moves or duration", run.RunID)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (run_id, player, score, moves, duration_ms) VALUES (?, ?, ?, ?, ?)",
		run.RunID.String(), run.Player, run.Score, run.Moves, run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run %s: %w", run.RunID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = "id, run_id, player, score, moves, duration_ms, created_at"

// rankOrder sorts the leaderboard: most fish first, then fewest moves, then fastest.
const rankOrder = "ORDER BY score DESC, moves ASC, duration_ms ASC, id ASC"

// TopRuns retrieves the best runs in leaderboard order.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.Query("SELECT "+runColumns+" FROM runs "+rankOrder+" LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collectRuns(rows)
}

// PlayerRuns retrieves a player's best runs in leaderboard order.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.Query(
		"SELECT "+runColumns+" FROM runs WHERE player = ? "+rankOrder+" LIMIT ?",
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs for %q: %w", player, err)
	}
	return collectRuns(rows)
}

// BestRun returns the top-ranked run, or ErrNotFound when no run exists.
func (s *Store) BestRun() (*Run, error) {
	row := s.db.QueryRow("SELECT " + runColumns + " FROM runs " + rankOrder + " LIMIT 1")
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return run, nil
}

// RunByID looks up a run by its run ID.
func (s *Store) RunByID(id uuid.UUID) (*Run, error) {
	row := s.db.QueryRow("SELECT "+runColumns+" FROM runs WHERE run_id = ?", id.String())
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run %s: %w", id, err)
	}
	return run, nil
}

// ClearRuns deletes every recorded run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs        int
	Players     int
	BestMoves   int
	AvgMoves    float64
	BestTime    time.Duration
	LastPlayed  time.Time
	TotalCaught int
}

// GetStats aggregates all recorded runs. An empty table yields zero Stats.
func (s *Store) GetStats() (*Stats, error) {
	var (
		stats      Stats
		bestMoves  sql.NullInt64
		avgMoves   sql.NullFloat64
		bestTime   sql.NullInt64
		total      sql.NullInt64
		lastPlayed any
	)
	err := s.db.QueryRow(`
		SELECT COUNT(*), COUNT(DISTINCT player), MIN(moves), AVG(moves),
		       MIN(duration_ms), SUM(score), MAX(created_at)
		FROM runs
	`).Scan(&stats.Runs, &stats.Players, &bestMoves, &avgMoves, &bestTime, &total, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	stats.BestMoves = int(bestMoves.Int64)
	stats.AvgMoves = avgMoves.Float64
	stats.BestTime = time.Duration(bestTime.Int64) * time.Millisecond
	stats.TotalCaught = int(total.Int64)
	stats.LastPlayed = parseTime(lastPlayed)
	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		r          Run
		runID      string
		durationMS int64
		createdAt  any
	)
	if err := row.Scan(&r.ID, &runID, &r.Player, &r.Score, &r.Moves, &durationMS, &createdAt); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(runID)
	if err != nil {
		return nil, fmt.Errorf("storage: bad run_id %q: %w", runID, err)
	}
	r.RunID = id
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

func collectRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both driver-decoded times and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
