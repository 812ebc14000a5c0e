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
	`CREATE TABLE IF NOT EXISTS users (
		id             TEXT PRIMARY KEY,
		username       TEXT NOT NULL UNIQUE,
		birth_name     TEXT,
		birth_date     TEXT,
		birth_time     TEXT,
		birth_place    TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		text        TEXT NOT NULL,
		date        TEXT NOT NULL DEFAULT '',
		completed   INTEGER NOT NULL DEFAULT 0,
		category    TEXT NOT NULL
		            CHECK(category IN ('work','personal','health','creativity','relationships','finance')),
		priority    TEXT NOT NULL DEFAULT 'medium'
		            CHECK(priority IN ('low','medium','high')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_date ON tasks(user_id, date)`,

	// Single-row pointer to the logged-in user. A missing row means no
	// session; a dangling reference is treated as a cold start on read.
	`CREATE TABLE IF NOT EXISTS app_state (
		id              TEXT PRIMARY KEY CHECK(id = 'default'),
		current_user_id TEXT REFERENCES users(id) ON DELETE SET NULL,
		updated_at      TEXT NOT NULL
	)`,
}
