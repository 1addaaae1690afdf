package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"task-capture/internal/task/repository"
	"task-capture/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	loc *time.Location
}

// New creates a SQLite-backed Repository. Days are read back as midnight
// in loc. The schema must already exist, see Migrate.
func New(db *sql.DB, l log.Logger, loc *time.Location) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &implRepository{db: db, l: l, loc: loc}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
