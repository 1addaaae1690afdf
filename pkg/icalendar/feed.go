package icalendar

import (
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
)

const defaultProductID = "-//task-capture//Captured Tasks//EN"

// Entry is one calendar item to publish.
type Entry struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Created     time.Time
}

// Feed renders entries as a PUBLISH iCalendar document.
type Feed struct {
	Name      string
	ProductID string
}

// Build assembles the calendar; stamp is written as DTSTAMP on every event.
func (f Feed) Build(entries []Entry, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	if f.ProductID != "" {
		cal.SetProductId(f.ProductID)
	} else {
		cal.SetProductId(defaultProductID)
	}
	if f.Name != "" {
		cal.SetXWRCalName(f.Name)
	}

	for _, e := range entries {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(stamp)
		if !e.Created.IsZero() {
			ev.SetCreatedTime(e.Created)
		}
		if e.AllDay {
			ev.SetAllDayStartAt(e.Start)
			end := e.End
			if !end.After(e.Start) {
				end = e.Start.AddDate(0, 0, 1)
			}
			ev.SetAllDayEndAt(end)
		} else {
			ev.SetStartAt(e.Start)
			ev.SetEndAt(e.End)
		}
		ev.SetSummary(e.Summary)
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
	}

	return cal
}

// Write serializes the feed to w.
func (f Feed) Write(w io.Writer, entries []Entry, stamp time.Time) error {
	_, err := io.WriteString(w, f.Build(entries, stamp).Serialize())
	return err
}
