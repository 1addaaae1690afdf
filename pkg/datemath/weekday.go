package datemath

import (
	"fmt"
	"strings"
	"time"
)

// WeekdayNumber returns the 1-indexed weekday of t (1=Sunday .. 7=Saturday).
func WeekdayNumber(t time.Time) int {
	return int(t.Weekday()) + 1
}

// WeekdayName returns the lower-case name for a weekday number.
func WeekdayName(number int) string {
	if number < Sunday || number > Saturday {
		return ""
	}
	return weekdayNames[number-1]
}

// WeekdayNames returns the lower-case weekday names, Sunday first.
func WeekdayNames() []string {
	names := make([]string, daysPerWeek)
	copy(names, weekdayNames[:])
	return names
}

// WeekdayByName resolves a full weekday name, case-insensitively.
func WeekdayByName(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if n == name {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
}

// DaysUntilNext is the offset from current to the target weekday in a
// following week. The result is always in [1,7]; today never qualifies.
func DaysUntilNext(current, target int) int {
	days := target - current
	if days <= 0 {
		days += daysPerWeek
	}
	return days
}

// DaysUntilThis is the offset from current to the target weekday counted
// forward from today. The result is in [0,6]: today qualifies, and a weekday
// already behind us lands in the following week.
func DaysUntilThis(current, target int) int {
	days := target - current
	if days < 0 {
		days += daysPerWeek
	}
	return days
}

// DaysSinceWeekStart is the offset back to the Sunday that opens the week.
func DaysSinceWeekStart(current int) int {
	return current - Sunday
}
