package telegram

import (
	"errors"

	"task-capture/internal/task"
)

var errWrongSecret = errors.New("telegram: secret token mismatch")

// errorMessage returns a user-facing reply for a failed capture.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return "Nothing to capture. Send a line such as \"Call mom tomorrow at 6pm\"."
	case errors.Is(err, task.ErrTaskNotFound):
		return "That line no longer exists."
	default:
		return "Something went wrong while saving your line. Please try again."
	}
}
