package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the latest schema version supported by Migrate.
const SchemaVersion = 1

// Migrate creates the task_lines schema when it is missing or older than
// SchemaVersion.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}
	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS task_lines (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			text TEXT NOT NULL,
			status TEXT NOT NULL,
			day TEXT NOT NULL,
			position INTEGER NOT NULL,
			parsed TEXT NULL,
			calendar_event_id TEXT NOT NULL DEFAULT '',
			calendar_link TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create task_lines table: %w", err)
	}

	_, err = tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_task_lines_user_day ON task_lines(user_id, day, position);`)
	if err != nil {
		return fmt.Errorf("migrate: create idx_task_lines_user_day: %w", err)
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO schema_migrations(version) VALUES (?);`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("migrate: record schema version: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("migrate: commit transaction: %w", err)
	}
	return nil
}
