package usecase

import (
	"context"
	"strings"

	"task-capture/internal/model"
	"task-capture/internal/task"
	"task-capture/internal/task/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.TaskLine, error) {
	sc = model.ScopeOrAnonymous(sc)
	line, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		return model.TaskLine{}, uc.mapRepoError(err, "failed to get task")
	}
	return line, nil
}

// Edit sends a processed line back to editing with the new text and
// processes it again. Without a date in the new text the line stays on
// its current day.
func (uc *implUseCase) Edit(ctx context.Context, sc model.Scope, input task.EditInput) (task.SubmitOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.SubmitOutput{}, task.ErrEmptyInput
	}

	line, err := uc.Detail(ctx, sc, input.ID)
	if err != nil {
		return task.SubmitOutput{}, err
	}

	if line.Status != model.TaskStatusEditing {
		if err := line.Transition(model.TaskStatusEditing, uc.parser.Now()); err != nil {
			return task.SubmitOutput{}, err
		}
	}
	line.Text = text

	uc.l.Infof(ctx, "Edit: user=%s task=%s", line.UserID, line.ID)

	return uc.process(ctx, line, line.Day)
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	line, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return err
	}

	if line.CalendarEventID != "" {
		uc.deleteCalendarEvent(ctx, line.CalendarEventID)
	}

	if err := uc.repo.DeleteTask(ctx, repository.DeleteTaskOptions{UserID: line.UserID, ID: line.ID}); err != nil {
		return uc.mapRepoError(err, "failed to delete task")
	}

	uc.l.Infof(ctx, "Delete: user=%s task=%s", line.UserID, line.ID)
	return nil
}
