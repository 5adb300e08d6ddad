package journal

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists the journal to SQLite.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens or creates a journal database.
// The path should be a file path (e.g., "./patternkit.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Each pooled connection to ":memory:" would be a separate database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS journal (
			seq INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			slot INTEGER NOT NULL,
			command TEXT NOT NULL,
			action TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append implements Store.
func (s *SQLiteStore) Append(e Entry) (Entry, error) {
	e, err := prepare(e)
	if err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Entry{}, ErrStoreClosed
	}

	err = s.db.QueryRow(`
		INSERT INTO journal (seq, id, slot, command, action, timestamp)
		VALUES (
			COALESCE((SELECT MAX(seq) FROM journal), 0) + 1,
			?, ?, ?, ?, ?
		)
		RETURNING seq
	`, e.ID.String(), e.Slot, e.Command, string(e.Action), e.Timestamp.UTC().Format(time.RFC3339Nano)).Scan(&e.Seq)
	if err != nil {
		return Entry{}, fmt.Errorf("append journal entry: %w", err)
	}
	return e, nil
}

// List implements Store.
func (s *SQLiteStore) List() ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT seq, id, slot, command, action, timestamp
		FROM journal
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e         Entry
			id        string
			action    string
			timestamp string
		)
		if err := rows.Scan(&e.Seq, &id, &e.Slot, &e.Command, &action, &timestamp); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse entry id %q: %w", id, err)
		}
		e.Action = Action(action)
		if e.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp); err != nil {
			return nil, fmt.Errorf("parse entry %d timestamp %q: %w", e.Seq, timestamp, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	return entries, nil
}

// Len implements Store.
func (s *SQLiteStore) Len() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrStoreClosed
	}

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM journal`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count journal: %w", err)
	}
	return n, nil
}

// Clear implements Store.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`DELETE FROM journal`); err != nil {
		return fmt.Errorf("clear journal: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
