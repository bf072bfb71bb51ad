package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrStorageUnavailable indicates the storage target could not be reached or
// configured. It is fatal at startup and surfaced to the operator.
var ErrStorageUnavailable = errors.New("storage unavailable")

// OpenDB opens the SQLite database at the given path, creating the parent
// directory if needed. ":memory:" opens an in-memory database. Sets WAL mode,
// enables foreign key enforcement (the day -> session cascade depends on it),
// and runs migrations.
func OpenDB(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no database path configured", ErrStorageUnavailable)
	}
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: creating db directory: %v", ErrStorageUnavailable, err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", ErrStorageUnavailable, err)
	}

	// Pragmas apply per connection, and ":memory:" is a distinct database on
	// each new connection. Pin the pool to a single connection so both behave.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: setting WAL mode: %v", ErrStorageUnavailable, err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: enabling foreign keys: %v", ErrStorageUnavailable, err)
	}

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: running migrations: %v", ErrStorageUnavailable, err)
	}

	return conn, nil
}
