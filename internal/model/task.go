package model

import (
	"fmt"
	"time"

	"task-capture/pkg/nlparser"
)

// TaskStatus is the processing state of a captured line.
type TaskStatus string

const (
	TaskStatusEditing    TaskStatus = "editing"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusProcessed  TaskStatus = "processed"
)

// IsValid reports whether s is a known status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusEditing, TaskStatusProcessing, TaskStatusProcessed:
		return true
	}
	return false
}

// CanTransitionTo reports whether a line may move from s to next.
// Lines advance editing -> processing -> processed; a processed line goes
// back to editing when its text is changed.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	switch s {
	case TaskStatusEditing:
		return next == TaskStatusProcessing
	case TaskStatusProcessing:
		return next == TaskStatusProcessed || next == TaskStatusEditing
	case TaskStatusProcessed:
		return next == TaskStatusEditing
	}
	return false
}

// TaskLine is one captured line filed under a calendar day.
type TaskLine struct {
	ID              string
	UserID          string
	Text            string
	Status          TaskStatus
	Day             time.Time // start of the bucket day
	Parsed          *nlparser.ParsedInput
	CalendarEventID string
	CalendarLink    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Transition moves the line to next, stamping UpdatedAt.
func (t *TaskLine) Transition(next TaskStatus, at time.Time) error {
	if !t.Status.CanTransitionTo(next) {
		return fmt.Errorf("task %s: invalid status transition %s -> %s", t.ID, t.Status, next)
	}
	t.Status = next
	t.UpdatedAt = at
	return nil
}
