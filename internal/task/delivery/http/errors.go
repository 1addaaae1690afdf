package http

import (
	"errors"
	"net/http"

	"task-capture/internal/task"
	pkgErrors "task-capture/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Errors without a mapping are reported as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrEmptyInput.Error())
	case errors.Is(err, task.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrInvalidRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrInvalidRange.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
