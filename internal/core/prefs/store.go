package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sadopc/folio/internal/core/state"
)

const themeKey = "theme"

// Store persists user preferences across sessions. Only the theme is stored.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the preferences database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening prefs db: %w", err)
	}
	// :memory: databases are per connection.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating prefs table: %w", err)
	}
	return nil
}

// Theme returns the saved theme. ok is false when nothing was saved yet.
func (s *Store) Theme() (t state.Theme, ok bool, err error) {
	var value string
	err = s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, themeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return state.Light, false, nil
	}
	if err != nil {
		return state.Light, false, fmt.Errorf("reading theme: %w", err)
	}
	t, err = state.ParseTheme(value)
	if err != nil {
		return state.Light, false, fmt.Errorf("reading theme: %w", err)
	}
	return t, true, nil
}

// SetTheme saves t, replacing any previous value.
func (s *Store) SetTheme(t state.Theme) error {
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		themeKey, t.String(), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
