package task

import (
	"fmt"
	"strings"
	"time"

	"task-capture/pkg/nlparser"
)

// NotificationDateLayout renders the day line of a notification, e.g. "Wed, Jun 11".
const NotificationDateLayout = "Mon, Jan 2"

// Notification is the short summary shown after a line is captured.
type Notification struct {
	Headline   string `json:"headline"`
	Date       string `json:"date"`
	Time       string `json:"time,omitempty"`
	Location   string `json:"location,omitempty"`
	Confidence string `json:"confidence"`
}

// NewNotification summarises a parse result for a line filed under day.
func NewNotification(parsed nlparser.ParsedInput, day time.Time) Notification {
	n := Notification{
		Headline:   Headline(parsed.Intent),
		Date:       day.Format(NotificationDateLayout),
		Confidence: fmt.Sprintf("Confidence: %d%%", nlparser.ConfidencePercent(parsed.Confidence)),
	}
	if parsed.Time != nil {
		n.Time = *parsed.Time
	}
	if parsed.Location != nil {
		n.Location = *parsed.Location
	}
	return n
}

// Headline names what kind of item was added.
func Headline(intent nlparser.Intent) string {
	switch intent {
	case nlparser.IntentEvent:
		return "Event added"
	case nlparser.IntentTask:
		return "Task added"
	case nlparser.IntentNote:
		return "Note added"
	default:
		return "Added"
	}
}

// Lines returns the non-empty lines in display order.
func (n Notification) Lines() []string {
	lines := []string{n.Headline, n.Date}
	if n.Time != "" {
		lines = append(lines, n.Time)
	}
	if n.Location != "" {
		lines = append(lines, n.Location)
	}
	return append(lines, n.Confidence)
}

func (n Notification) String() string {
	return strings.Join(n.Lines(), "\n")
}
