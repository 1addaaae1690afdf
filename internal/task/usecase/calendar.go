package usecase

import (
	"context"

	"task-capture/internal/model"
	"task-capture/pkg/gcalendar"
)

// syncCalendar replaces the line's calendar event with one for its current
// parse. Failures are logged and leave the line without a link.
func (uc *implUseCase) syncCalendar(ctx context.Context, line *model.TaskLine) {
	if uc.calendar.Client == nil {
		return
	}

	if line.CalendarEventID != "" {
		uc.deleteCalendarEvent(ctx, line.CalendarEventID)
		line.CalendarEventID = ""
		line.CalendarLink = ""
	}

	if line.Parsed == nil || line.Parsed.Date == nil {
		return
	}

	entry := uc.calendarEntry(*line)
	event, err := uc.calendar.Client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendar.CalendarID,
		Summary:     entry.Summary,
		Description: entry.Description,
		Location:    entry.Location,
		StartTime:   entry.Start,
		EndTime:     entry.End,
		AllDay:      entry.AllDay,
		Timezone:    uc.parser.Location().String(),
	})
	if err != nil {
		calendarEventsTotal.WithLabelValues("failed").Inc()
		uc.l.Warnf(ctx, "calendar event creation failed for task %s (non-fatal): %v", line.ID, err)
		return
	}

	calendarEventsTotal.WithLabelValues("created").Inc()
	line.CalendarEventID = event.ID
	line.CalendarLink = event.HtmlLink
}

func (uc *implUseCase) deleteCalendarEvent(ctx context.Context, eventID string) {
	if uc.calendar.Client == nil {
		return
	}
	if err := uc.calendar.Client.DeleteEvent(ctx, uc.calendar.CalendarID, eventID); err != nil {
		calendarEventsTotal.WithLabelValues("failed").Inc()
		uc.l.Warnf(ctx, "calendar event %s deletion failed (non-fatal): %v", eventID, err)
		return
	}
	calendarEventsTotal.WithLabelValues("deleted").Inc()
}
