package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves date phrases against a reference time in one location.
// All returned dates are midnight in that location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserInLocation creates a parser bound to loc. A nil loc means UTC.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a standalone date phrase to the start of the matching day.
// Accepted: "today", "tomorrow", "yesterday", "next <weekday>",
// "this <weekday>", "in N days|weeks|months" and YYYY-MM-DD.
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))

	switch phrase {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.AddDays(baseTime, 1), nil
	case "yesterday":
		return p.AddDays(baseTime, -1), nil
	}

	if day, err := time.ParseInLocation(DayLayout, phrase, p.location); err == nil {
		return day, nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(phrase, "in ") {
		return p.parseInDuration(phrase, baseTime)
	}

	if rest, ok := strings.CutPrefix(phrase, "next "); ok {
		target, err := WeekdayByName(rest)
		if err != nil {
			return baseTime, err
		}
		return p.NextWeekday(baseTime, target), nil
	}

	if rest, ok := strings.CutPrefix(phrase, "this "); ok {
		target, err := WeekdayByName(rest)
		if err != nil {
			return baseTime, err
		}
		return p.ThisWeekday(baseTime, target), nil
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnknownPhrase, phrase)
}

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(phrase string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(phrase)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", phrase)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return baseTime, fmt.Errorf("invalid duration amount: %q", matches[1])
	}
	return p.shiftByUnit(baseTime, amount, matches[2]), nil
}

func (p *Parser) shiftByUnit(baseTime time.Time, amount int, unit string) time.Time {
	switch {
	case strings.HasPrefix(unit, "week"):
		return p.AddDays(baseTime, amount*daysPerWeek)
	case strings.HasPrefix(unit, "month"):
		// Clamp to the end of the target month: Jan 31 + 1 month is Feb 28.
		t := baseTime.In(p.location)
		target := t.Month() + time.Month(amount)
		lastDay := time.Date(t.Year(), target+1, 0, 0, 0, 0, 0, p.location).Day()
		return time.Date(t.Year(), target, min(t.Day(), lastDay), 0, 0, 0, 0, p.location)
	default:
		return p.AddDays(baseTime, amount)
	}
}

// MatchRelative scans lower-cased free text for a relative day reference.
// Checks run in priority order using plain substring containment:
// "today", "tomorrow", "yesterday", then "next" or "this" together with the
// first weekday name found in Sunday..Saturday order.
func (p *Parser) MatchRelative(lowered string, baseTime time.Time) (time.Time, bool) {
	switch {
	case strings.Contains(lowered, "today"):
		return p.StartOfDay(baseTime), true
	case strings.Contains(lowered, "tomorrow"):
		return p.AddDays(baseTime, 1), true
	case strings.Contains(lowered, "yesterday"):
		return p.AddDays(baseTime, -1), true
	}

	if strings.Contains(lowered, "next") {
		if target, ok := firstWeekdayIn(lowered); ok {
			return p.NextWeekday(baseTime, target), true
		}
	}

	if strings.Contains(lowered, "this") {
		if target, ok := firstWeekdayIn(lowered); ok {
			return p.ThisWeekday(baseTime, target), true
		}
	}

	return time.Time{}, false
}

func firstWeekdayIn(lowered string) (int, bool) {
	for i, name := range weekdayNames {
		if strings.Contains(lowered, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// NextWeekday returns the target weekday in a following week, never today.
func (p *Parser) NextWeekday(baseTime time.Time, target int) time.Time {
	current := WeekdayNumber(baseTime.In(p.location))
	return p.AddDays(baseTime, DaysUntilNext(current, target))
}

// ThisWeekday returns the target weekday counted forward from today,
// today included.
func (p *Parser) ThisWeekday(baseTime time.Time, target int) time.Time {
	current := WeekdayNumber(baseTime.In(p.location))
	return p.AddDays(baseTime, DaysUntilThis(current, target))
}

// WeekStart returns the Sunday that opens the week containing baseTime.
func (p *Parser) WeekStart(baseTime time.Time) time.Time {
	current := WeekdayNumber(baseTime.In(p.location))
	return p.AddDays(baseTime, -DaysSinceWeekStart(current))
}

// AddDays returns the start of the day n calendar days after baseTime's day.
// Calendar arithmetic keeps the result on midnight across DST changes.
func (p *Parser) AddDays(baseTime time.Time, n int) time.Time {
	t := baseTime.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, p.location)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.AddDays(t, 0)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// FormatDay renders the day key of t in the parser's timezone.
func (p *Parser) FormatDay(t time.Time) string {
	return t.In(p.location).Format(DayLayout)
}
