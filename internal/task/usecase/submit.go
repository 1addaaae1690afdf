package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-capture/internal/model"
	"task-capture/internal/task"
	"task-capture/internal/task/repository"
)

// Submit stores the line in editing state, then processes it.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input task.SubmitInput) (task.SubmitOutput, error) {
	sc = model.ScopeOrAnonymous(sc)
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.SubmitOutput{}, task.ErrEmptyInput
	}

	now := uc.parser.Now()
	fallback, err := uc.resolveDay(input.FallbackDate, now)
	if err != nil {
		return task.SubmitOutput{}, err
	}

	line, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		ID:        uc.newID(),
		UserID:    sc.UserID,
		Text:      text,
		Status:    model.TaskStatusEditing,
		Day:       fallback,
		CreatedAt: now,
	})
	if err != nil {
		return task.SubmitOutput{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "Submit: user=%s task=%s", sc.UserID, line.ID)

	return uc.process(ctx, line, fallback)
}

// process parses the line text, files it under the parsed day (or fallback)
// and pushes it to the calendar. The line ends in processed state.
func (uc *implUseCase) process(ctx context.Context, line model.TaskLine, fallback time.Time) (task.SubmitOutput, error) {
	now := uc.parser.Now()
	if err := line.Transition(model.TaskStatusProcessing, now); err != nil {
		return task.SubmitOutput{}, err
	}

	parsed := uc.parser.ParseAt(line.Text, now)
	observeParse(parsed)

	line.Parsed = &parsed
	line.Day = fallback
	if parsed.Date != nil {
		line.Day = *parsed.Date
	}

	uc.syncCalendar(ctx, &line)

	if err := line.Transition(model.TaskStatusProcessed, now); err != nil {
		return task.SubmitOutput{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		UserID:          line.UserID,
		ID:              line.ID,
		Text:            line.Text,
		Status:          line.Status,
		Day:             line.Day,
		Parsed:          line.Parsed,
		CalendarEventID: line.CalendarEventID,
		CalendarLink:    line.CalendarLink,
		UpdatedAt:       line.UpdatedAt,
	})
	if err != nil {
		// The stored line does not reference the new event, so drop it.
		if line.CalendarEventID != "" {
			uc.deleteCalendarEvent(ctx, line.CalendarEventID)
		}
		return task.SubmitOutput{}, uc.mapRepoError(err, "failed to update task")
	}

	processedTotal.WithLabelValues(parsed.Intent.String()).Inc()

	return task.SubmitOutput{
		Task:         updated,
		Notification: task.NewNotification(parsed, updated.Day),
	}, nil
}
