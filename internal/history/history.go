// Package history persists committed syllables to a per-user SQLite
// database so the tools can report what was typed, and how often.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS syllables (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    reading     TEXT NOT NULL,
    pinyin      TEXT NOT NULL,
    layout      TEXT NOT NULL,
    typed_at_ns INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_syllables_reading ON syllables(reading);
CREATE INDEX IF NOT EXISTS idx_syllables_typed_at ON syllables(typed_at_ns);
`

// Store is the SQLite syllable history.
type Store struct {
	db *sql.DB
}

// Entry is one committed syllable.
type Entry struct {
	ID      int64
	Reading string
	Pinyin  string
	Layout  string
	TypedAt time.Time
}

// ReadingCount is a reading with its commit count.
type ReadingCount struct {
	Reading string
	Count   int64
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record inserts one committed syllable.
func (s *Store) Record(reading, pinyin, layoutName string) error {
	_, err := s.db.Exec(`
		INSERT INTO syllables (reading, pinyin, layout, typed_at_ns)
		VALUES (?, ?, ?, ?)`,
		reading, pinyin, layoutName, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert syllable: %w", err)
	}
	return nil
}

// Recent returns the most recently committed syllables, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, reading, pinyin, layout, typed_at_ns
		FROM syllables ORDER BY typed_at_ns DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ns int64
		if err := rows.Scan(&e.ID, &e.Reading, &e.Pinyin, &e.Layout, &ns); err != nil {
			return nil, fmt.Errorf("scan syllable: %w", err)
		}
		e.TypedAt = time.Unix(0, ns)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Top returns the most frequently committed readings.
func (s *Store) Top(limit int) ([]ReadingCount, error) {
	rows, err := s.db.Query(`
		SELECT reading, COUNT(*) AS n
		FROM syllables GROUP BY reading ORDER BY n DESC, reading LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top: %w", err)
	}
	defer rows.Close()

	var counts []ReadingCount
	for rows.Next() {
		var rc ReadingCount
		if err := rows.Scan(&rc.Reading, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts = append(counts, rc)
	}
	return counts, rows.Err()
}

// Total returns the number of recorded syllables.
func (s *Store) Total() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM syllables`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count syllables: %w", err)
	}
	return n, nil
}
