package task

import (
	"context"
	"io"
	"time"

	"task-capture/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse previews how a line would be read without storing anything.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Submit parses a line and files it under the parsed day, or under
	// FallbackDate when no date was found.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)

	Detail(ctx context.Context, sc model.Scope, id string) (model.TaskLine, error)

	// Edit replaces the text of a line and parses it again. The line moves
	// to another day when the new text names one.
	Edit(ctx context.Context, sc model.Scope, input EditInput) (SubmitOutput, error)

	Delete(ctx context.Context, sc model.Scope, id string) error

	ListDay(ctx context.Context, sc model.Scope, input ListDayInput) (DayTasks, error)

	// ListWeek returns the seven days of the Sunday-first week containing Date.
	ListWeek(ctx context.Context, sc model.Scope, input ListWeekInput) (WeekTasks, error)

	// ExportCalendar writes the lines in [From, To] as an iCalendar feed.
	ExportCalendar(ctx context.Context, sc model.Scope, input ExportInput, w io.Writer) (int, error)

	// Prune removes every line filed before the given day.
	Prune(ctx context.Context, before time.Time) (int, error)
}
