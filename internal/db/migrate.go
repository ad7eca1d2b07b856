package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	`CREATE TABLE IF NOT EXISTS study_plans (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		subject         TEXT NOT NULL,
		goal            TEXT NOT NULL DEFAULT '',
		deadline        TEXT NOT NULL,
		estimated_hours REAL NOT NULL CHECK(estimated_hours > 0),
		completed_hours REAL NOT NULL DEFAULT 0 CHECK(completed_hours >= 0),
		priority        TEXT NOT NULL DEFAULT 'medium'
		                CHECK(priority IN ('low','medium','high')),
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_study_plans_created ON study_plans(created_at)`,

	`CREATE TABLE IF NOT EXISTS study_sessions (
		id           TEXT PRIMARY KEY,
		subject      TEXT NOT NULL,
		notes        TEXT NOT NULL DEFAULT '',
		duration_min INTEGER NOT NULL CHECK(duration_min >= 0),
		session_date TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_study_sessions_date ON study_sessions(session_date)`,
	`CREATE INDEX IF NOT EXISTS idx_study_sessions_created ON study_sessions(created_at)`,
}
