package task

import (
	"time"

	"task-capture/internal/model"
	"task-capture/pkg/nlparser"
)

// ParseInput is the input for a parse preview. A zero Now means the
// parser's own clock.
type ParseInput struct {
	Text string
	Now  time.Time
}

type ParseOutput struct {
	Parsed       nlparser.ParsedInput
	Notification Notification
}

// SubmitInput is the input for capturing one line.
// UserID is stored in model.Scope, not here.
type SubmitInput struct {
	Text         string
	FallbackDate string // YYYY-MM-DD, defaults to today
}

// SubmitOutput is the stored line together with the summary shown to the user.
type SubmitOutput struct {
	Task         model.TaskLine
	Notification Notification
}

type EditInput struct {
	ID   string
	Text string
}

type ListDayInput struct {
	Date string // YYYY-MM-DD, defaults to today
}

type ListWeekInput struct {
	Date string // any day of the week, defaults to today
}

// DayTasks holds the lines of one day in capture order.
type DayTasks struct {
	Day   time.Time
	Tasks []model.TaskLine
}

// WeekTasks holds seven consecutive days starting on Sunday.
type WeekTasks struct {
	Start time.Time
	Days  []DayTasks
}

// ExportInput bounds an iCalendar export. Both ends are inclusive days;
// empty values default to the current week.
type ExportInput struct {
	From string
	To   string
}
