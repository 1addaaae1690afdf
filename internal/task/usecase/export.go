package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"task-capture/internal/model"
	"task-capture/internal/task"
	"task-capture/internal/task/repository"
	"task-capture/pkg/icalendar"
)

// maxExportDays bounds one export request.
const maxExportDays = 366

// ExportCalendar writes the lines filed in [From, To] as an iCalendar feed
// and returns how many events it contains. Lines with a clock time become
// timed events, the rest all-day events on their day.
func (uc *implUseCase) ExportCalendar(ctx context.Context, sc model.Scope, input task.ExportInput, w io.Writer) (int, error) {
	sc = model.ScopeOrAnonymous(sc)
	now := uc.parser.Now()
	dates := uc.parser.Dates()

	from := dates.WeekStart(now)
	if input.From != "" {
		var err error
		if from, err = uc.resolveDay(input.From, now); err != nil {
			return 0, err
		}
	}
	to := dates.AddDays(from, daysPerWeek-1)
	if input.To != "" {
		var err error
		if to, err = uc.resolveDay(input.To, now); err != nil {
			return 0, err
		}
	}
	if to.Before(from) || dates.AddDays(from, maxExportDays).Before(to) {
		return 0, task.ErrInvalidRange
	}

	lines, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID: sc.UserID,
		From:   from,
		To:     dates.AddDays(to, 1),
	})
	if err != nil {
		return 0, uc.mapRepoError(err, "failed to list tasks")
	}

	entries := make([]icalendar.Entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, uc.calendarEntry(line))
	}

	if err := uc.feed.Write(w, entries, now); err != nil {
		return 0, fmt.Errorf("failed to write calendar: %w", err)
	}

	uc.l.Infof(ctx, "ExportCalendar: user=%s from=%s to=%s events=%d", sc.UserID, dates.FormatDay(from), dates.FormatDay(to), len(entries))
	return len(entries), nil
}

func (uc *implUseCase) calendarEntry(line model.TaskLine) icalendar.Entry {
	e := icalendar.Entry{
		UID:         line.ID + "@task-capture",
		Summary:     line.Text,
		Description: line.Text,
		Start:       line.Day,
		End:         uc.parser.Dates().AddDays(line.Day, 1),
		AllDay:      true,
		Created:     line.CreatedAt,
	}
	if line.Parsed == nil {
		return e
	}

	e.Summary = line.Parsed.Title
	if line.Parsed.Location != nil {
		e.Location = *line.Parsed.Location
	}
	if start, ok := line.Parsed.Start(); ok {
		e.Start = start
		e.End = start.Add(uc.calendar.EventDuration)
		e.AllDay = false
	}
	return e
}

func (uc *implUseCase) Prune(ctx context.Context, before time.Time) (int, error) {
	n, err := uc.repo.PruneTasks(ctx, repository.PruneTasksOptions{Before: uc.parser.Dates().StartOfDay(before)})
	if err != nil {
		return 0, fmt.Errorf("failed to prune tasks: %w", err)
	}
	if n > 0 {
		uc.l.Infof(ctx, "Prune: removed %d tasks filed before %s", n, uc.parser.Dates().FormatDay(before))
	}
	return n, nil
}
