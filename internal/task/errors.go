package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange = errors.New("invalid date range")
)
