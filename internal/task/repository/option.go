package repository

import (
	"time"

	"task-capture/internal/model"
	"task-capture/pkg/nlparser"
)

// CreateTaskOptions holds the parameters for storing a new line.
type CreateTaskOptions struct {
	ID        string
	UserID    string
	Text      string
	Status    model.TaskStatus
	Day       time.Time
	Parsed    *nlparser.ParsedInput
	CreatedAt time.Time
}

type GetTaskOptions struct {
	UserID string
	ID     string
}

// ListTasksOptions selects the lines of one user with From <= Day < To.
type ListTasksOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}

// UpdateTaskOptions holds the full new state of a line.
type UpdateTaskOptions struct {
	UserID          string
	ID              string
	Text            string
	Status          model.TaskStatus
	Day             time.Time
	Parsed          *nlparser.ParsedInput
	CalendarEventID string
	CalendarLink    string
	UpdatedAt       time.Time
}

type DeleteTaskOptions struct {
	UserID string
	ID     string
}

type PruneTasksOptions struct {
	Before time.Time
}
