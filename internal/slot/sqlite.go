package slot

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLite persists slots to a single table of JSON payloads keyed by slot
// name, one row per slot.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the slot table at path.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = "tintshop.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

// Driver returns the adapter driver identifier.
func (s *SQLite) Driver() Driver { return DriverSQLite }

// Load returns the payload for name, or (nil, nil) when no row exists.
func (s *SQLite) Load(name Name) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM slots WHERE name = ?`, string(name)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select slot %q: %w", name, err)
	}
	return payload, nil
}

// Save upserts the payload for name.
func (s *SQLite) Save(name Name, payload []byte) error {
	_, err := s.db.Exec(`INSERT INTO slots(name, payload) VALUES(?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`, string(name), payload)
	if err != nil {
		return fmt.Errorf("upsert slot %q: %w", name, err)
	}
	return nil
}

// Remove deletes the row for name; a missing row is not an error.
func (s *SQLite) Remove(name Name) error {
	if _, err := s.db.Exec(`DELETE FROM slots WHERE name = ?`, string(name)); err != nil {
		return fmt.Errorf("delete slot %q: %w", name, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// Path returns the configured database path.
func (s *SQLite) Path() string { return s.path }
