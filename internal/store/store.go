// Package store provides the SQLite-backed local draft store.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agenciagand/orca/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store persists the single budget draft as a full JSON snapshot under
// one well-known key.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the draft database path under the user data dir.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "orca", "drafts.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "orca", "drafts.db")
}

// Open opens or creates the draft database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening draft db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the draft database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save overwrites the draft with a full snapshot of the state.
func (s *Store) Save(state model.BudgetState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT OR REPLACE INTO drafts (key, payload, updated_at)
		VALUES (?, ?, ?)`, draftKey, string(payload), now)
	if err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	return nil
}

// Load reads the saved draft. A missing or unreadable draft is not an
// error: the initial state is returned and found is false. Corrupt
// payloads are silently replaced by the default on the next save.
func (s *Store) Load() (state model.BudgetState, found bool) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM drafts WHERE key = ?`, draftKey).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			// Treat read failures like a missing draft.
			return model.InitialState(), false
		}
		return model.InitialState(), false
	}

	state = model.InitialState()
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return model.InitialState(), false
	}
	return state, true
}

// Clear deletes the saved draft. This is the only way a draft is
// destroyed; the engine itself never exposes a reset.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM drafts WHERE key = ?`, draftKey)
	return err
}

// UpdatedAt returns the last save time of the draft, or the zero time
// when no draft exists.
func (s *Store) UpdatedAt() time.Time {
	var raw string
	if err := s.db.QueryRow(`SELECT updated_at FROM drafts WHERE key = ?`, draftKey).Scan(&raw); err != nil {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, raw)
	return t
}
