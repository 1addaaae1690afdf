package datemath

import (
	"errors"
	"time"
)

// Weekday numbers are 1-indexed with Sunday as the first day of the week.
const (
	Sunday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const daysPerWeek = 7

// DayLayout is the canonical text form of a calendar day.
const DayLayout = "2006-01-02"

var (
	ErrUnknownPhrase  = errors.New("unrecognized date phrase")
	ErrUnknownWeekday = errors.New("unknown weekday")
)

// weekdayNames is indexed by weekday number - 1.
var weekdayNames = [daysPerWeek]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Match describes a date phrase found inside a larger text.
type Match struct {
	Date  time.Time // start of the matched day
	Start int       // byte offset of the phrase in the input
	End   int
	Text  string
}
