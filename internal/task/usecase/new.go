package usecase

import (
	"context"
	"time"

	"task-capture/internal/task"
	"task-capture/internal/task/repository"
	"task-capture/pkg/gcalendar"
	"task-capture/pkg/icalendar"
	pkgLog "task-capture/pkg/log"
	"task-capture/pkg/nlparser"
)

const defaultEventDuration = time.Hour

// Calendar is the part of the Google Calendar client the use case pushes to.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CalendarConfig enables the calendar push. A nil Client disables it.
type CalendarConfig struct {
	Client        Calendar
	CalendarID    string
	EventDuration time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	parser   *nlparser.Parser
	repo     repository.Repository
	calendar CalendarConfig
	feed     icalendar.Feed
	newID    func() string
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	parser *nlparser.Parser,
	repo repository.Repository,
	calendar CalendarConfig,
) task.UseCase {
	if calendar.EventDuration <= 0 {
		calendar.EventDuration = defaultEventDuration
	}
	return &implUseCase{
		l:        l,
		parser:   parser,
		repo:     repo,
		calendar: calendar,
		feed:     icalendar.Feed{Name: "Captured tasks"},
		newID:    newTaskID,
	}
}
