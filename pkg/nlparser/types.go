package nlparser

import (
	"strconv"
	"strings"
	"time"
)

// Intent is the classified purpose of a captured line.
type Intent string

const (
	IntentEvent   Intent = "event"
	IntentTask    Intent = "task"
	IntentNote    Intent = "note"
	IntentUnknown Intent = "unknown"
)

func (i Intent) String() string {
	return string(i)
}

// IsValid reports whether i is one of the known intents.
func (i Intent) IsValid() bool {
	switch i {
	case IntentEvent, IntentTask, IntentNote, IntentUnknown:
		return true
	}
	return false
}

// ParsedInput is the structured reading of one freeform line.
// Date is midnight in the parser's location. Time keeps the form it was
// written in, normalised to "H:MM" or "H:MM AM|PM".
type ParsedInput struct {
	OriginalText string     `json:"original_text"`
	Intent       Intent     `json:"intent"`
	Date         *time.Time `json:"date,omitempty"`
	Time         *string    `json:"time,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Title        string     `json:"title"`
	Confidence   float64    `json:"confidence"`
}

// HasDate reports whether a date was detected.
func (p ParsedInput) HasDate() bool {
	return p.Date != nil
}

// Start combines Date and Time into a single moment. It reports false when
// either is missing or the time is not a real clock reading ("25:00").
func (p ParsedInput) Start() (time.Time, bool) {
	if p.Date == nil || p.Time == nil {
		return time.Time{}, false
	}
	hour, minute, ok := ParseClock(*p.Time)
	if !ok {
		return time.Time{}, false
	}
	d := *p.Date
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location()), true
}

// ParseClock reads "H:MM" (24-hour) or "H:MM AM|PM" into hour and minute.
func ParseClock(s string) (hour, minute int, ok bool) {
	clock, meridiem, _ := strings.Cut(strings.TrimSpace(s), " ")
	hourText, minuteText, found := strings.Cut(clock, ":")
	if !found {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(minuteText)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	switch strings.ToUpper(meridiem) {
	case "":
		if hour < 0 || hour > 23 {
			return 0, 0, false
		}
	case "AM", "PM":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
		if strings.EqualFold(meridiem, "PM") {
			hour += 12
		}
	default:
		return 0, 0, false
	}

	return hour, minute, true
}
