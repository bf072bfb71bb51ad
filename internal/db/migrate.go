package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the full
// list is replayed on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS day_logs (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		date  TEXT NOT NULL UNIQUE,
		notes TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS mentorship_sessions (
		id                   INTEGER PRIMARY KEY AUTOINCREMENT,
		day_log_id           INTEGER NOT NULL REFERENCES day_logs(id) ON DELETE CASCADE,
		group_name           TEXT NOT NULL,
		category             TEXT NOT NULL,
		activity_description TEXT NOT NULL DEFAULT '',
		duration_hours       INTEGER NOT NULL DEFAULT 0,
		duration_minutes     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_day_log ON mentorship_sessions(day_log_id)`,
}
