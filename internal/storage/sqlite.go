// Package storage provides the SQLite round journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the round journal.
// It is safe for concurrent use by several sessions.
type Store struct {
	db *sql.DB
}

// Round is one finished round. It records what happened, not game state:
// nothing in it can be used to resume a round.
type Round struct {
	ID              uuid.UUID
	Session         string // "local" or the SSH session ID
	Ticks           int
	BlocksDestroyed int
	PaddleBounces   int
	EndedAt         time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			session TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			blocks_destroyed INTEGER NOT NULL DEFAULT 0,
			paddle_bounces INTEGER NOT NULL DEFAULT 0,
			ended_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session);
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

// SaveRound appends a finished round to the journal. A zero ID is replaced
// by a fresh UUID and a zero EndedAt by the current time.
// Returns the stored round.
func (s *Store) SaveRound(r Round) (Round, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	r.EndedAt = r.EndedAt.UTC().Truncate(time.Second)

	_, err := s.db.Exec(
		`INSERT INTO rounds (round_id, session, ticks, blocks_destroyed, paddle_bounces, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.Session, r.Ticks, r.BlocksDestroyed, r.PaddleBounces,
		r.EndedAt.Format(timeLayout),
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r, nil
}

// RecentRounds returns the most recently saved rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT round_id, session, ticks, blocks_destroyed, paddle_bounces, ended_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// SessionRounds returns the rounds of one session, newest first.
func (s *Store) SessionRounds(session string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT round_id, session, ticks, blocks_destroyed, paddle_bounces, ended_at
		 FROM rounds
		 WHERE session = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundByID looks up a single round. Returns nil if it does not exist.
func (s *Store) RoundByID(id uuid.UUID) (*Round, error) {
	var r Round
	var roundID string
	var endedAt any

	err := s.db.QueryRow(
		`SELECT round_id, session, ticks, blocks_destroyed, paddle_bounces, ended_at
		 FROM rounds
		 WHERE round_id = ?`,
		id.String(),
	).Scan(&roundID, &r.Session, &r.Ticks, &r.BlocksDestroyed, &r.PaddleBounces, &endedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}

	if r.ID, err = uuid.Parse(roundID); err != nil {
		return nil, fmt.Errorf("storage: bad round id %q: %w", roundID, err)
	}
	r.EndedAt = parseTime(endedAt)
	return &r, nil
}

// ClearRounds deletes the whole journal.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// JournalStats contains aggregated statistics over all rounds.
type JournalStats struct {
	Rounds       int
	Sessions     int
	TotalTicks   int64
	TotalBlocks  int64
	MostBlocks   int
	LongestRound int // In ticks
	AvgTicks     float64
	LastPlayed   time.Time
}

// Stats aggregates the journal.
func (s *Store) Stats() (*JournalStats, error) {
	stats := &JournalStats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT session),
		        COALESCE(SUM(ticks), 0), COALESCE(SUM(blocks_destroyed), 0),
		        COALESCE(MAX(blocks_destroyed), 0), COALESCE(MAX(ticks), 0),
		        COALESCE(AVG(ticks), 0), MAX(ended_at)
		 FROM rounds`,
	).Scan(
		&stats.Rounds, &stats.Sessions,
		&stats.TotalTicks, &stats.TotalBlocks,
		&stats.MostBlocks, &stats.LongestRound,
		&stats.AvgTicks, &lastPlayed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get journal stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

func scanRounds(rows *sql.Rows) ([]Round, error) {
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var roundID string
		var endedAt any
		if err := rows.Scan(&roundID, &r.Session, &r.Ticks, &r.BlocksDestroyed, &r.PaddleBounces, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		id, err := uuid.Parse(roundID)
		if err != nil {
			return nil, fmt.Errorf("storage: bad round id %q: %w", roundID, err)
		}
		r.ID = id
		r.EndedAt = parseTime(endedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
