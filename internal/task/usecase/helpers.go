package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"task-capture/internal/task"
	"task-capture/internal/task/repository"
)

const daysPerWeek = 7

func newTaskID() string {
	return uuid.NewString()
}

// resolveDay reads a day parameter. Empty means today; besides YYYY-MM-DD
// the date-math phrases ("tomorrow", "next friday") are accepted.
func (uc *implUseCase) resolveDay(value string, now time.Time) (time.Time, error) {
	dates := uc.parser.Dates()
	if value == "" {
		return dates.StartOfDay(now), nil
	}
	day, err := dates.Parse(value, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", task.ErrInvalidDate, value)
	}
	return day, nil
}

func (uc *implUseCase) mapRepoError(err error, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
