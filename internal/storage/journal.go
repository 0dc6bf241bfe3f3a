// Package storage keeps an in-memory SQLite journal of match3 session
// events. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; a journal lives as long as the
// process that opened it.
package storage

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

// Journal records the events of one game's sessions. A start event opens a
// new session with a fresh id; later events belong to it.
type Journal struct {
	db     *sql.DB
	gameID string

	mu        sync.Mutex
	sessionID string
}

var _ match3.Recorder = (*Journal)(nil)

// Summary aggregates the events of one session.
type Summary struct {
	SessionID    string
	GameID       string
	Swaps        int // Valid swap requests, including reverted ones
	AppliedSwaps int
	Waves        int // Cascade waves after swaps or the opening settle
	Cleared      int // Tiles cleared by swaps and waves
	LongestChain int // Highest wave number reached in one settle
	FinalScore   int
	Ended        bool
}

// OpenJournal creates an empty in-memory journal for gameID.
func OpenJournal(gameID string) (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open journal: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to journal: %w", err)
	}

	j := &Journal{db: db, gameID: gameID, sessionID: uuid.NewString()}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return j, nil
}

// migrate creates the journal schema.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			from_cell INTEGER NOT NULL DEFAULT -1,
			to_cell INTEGER NOT NULL DEFAULT -1,
			applied INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			wave INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			seconds INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, seq);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Close discards the journal.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// GameID returns the game the journal belongs to.
func (j *Journal) GameID() string {
	return j.gameID
}

// SessionID returns the id of the current session.
func (j *Journal) SessionID() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.sessionID
}

// Record appends an event to the current session.
func (j *Journal) Record(ev match3.Event) error {
	j.mu.Lock()
	if ev.Kind == match3.EventStart {
		j.sessionID = uuid.NewString()
	}
	sessionID := j.sessionID
	j.mu.Unlock()

	_, err := j.db.Exec(
		`INSERT INTO events (session_id, game_id, kind, from_cell, to_cell, applied, cleared, wave, score, seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, j.gameID, string(ev.Kind), ev.From, ev.To, ev.Applied, ev.Cleared, ev.Wave, ev.Score, ev.Seconds,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record %s event: %w", ev.Kind, err)
	}
	return nil
}

// Events returns the current session's events in order.
func (j *Journal) Events() ([]match3.Event, error) {
	rows, err := j.db.Query(
		`SELECT kind, from_cell, to_cell, applied, cleared, wave, score, seconds
		 FROM events
		 WHERE session_id = ?
		 ORDER BY seq`,
		j.SessionID(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var events []match3.Event
	for rows.Next() {
		var ev match3.Event
		var kind string
		if err := rows.Scan(&kind, &ev.From, &ev.To, &ev.Applied, &ev.Cleared, &ev.Wave, &ev.Score, &ev.Seconds); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ev.Kind = match3.EventKind(kind)
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return events, nil
}

// Summary aggregates the current session.
func (j *Journal) Summary() (Summary, error) {
	sum := Summary{SessionID: j.SessionID(), GameID: j.gameID}

	var ended int
	err := j.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN kind = 'swap' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'swap' AND applied THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'wave' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(cleared), 0),
			COALESCE(MAX(wave), 0),
			COALESCE(MAX(score), 0),
			COALESCE(SUM(CASE WHEN kind = 'end' THEN 1 ELSE 0 END), 0)
		 FROM events
		 WHERE session_id = ?`,
		sum.SessionID,
	).Scan(&sum.Swaps, &sum.AppliedSwaps, &sum.Waves, &sum.Cleared, &sum.LongestChain, &sum.FinalScore, &ended)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize session: %w", err)
	}
	sum.Ended = ended > 0
	return sum, nil
}
