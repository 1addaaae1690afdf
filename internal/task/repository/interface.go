package repository

import (
	"context"

	"task-capture/internal/model"
)

// Repository stores task lines bucketed by user and start-of-day.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.TaskLine, error)
	// GetTask returns ErrNotFound when the ID is unknown or owned by another user.
	GetTask(ctx context.Context, opt GetTaskOptions) (model.TaskLine, error)
	// ListTasks returns lines ordered by day, then by the order they were
	// filed under that day.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.TaskLine, error)
	// UpdateTask overwrites every mutable field. A changed Day refiles the
	// line at the end of the new day.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.TaskLine, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error
	// PruneTasks deletes lines of every user filed before opt.Before.
	PruneTasks(ctx context.Context, opt PruneTasksOptions) (int, error)
}
