package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthAlternation = `january|february|march|april|may|june|july|august|september|october|november|december|` +
	`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

const weekdayAlternation = `sunday|monday|tuesday|wednesday|thursday|friday|saturday`

// absolutePattern is one rule of the date grammar. resolve receives the
// submatches (index 0 is the whole match) and reports false when the
// captured values do not form a real calendar day.
type absolutePattern struct {
	re      *regexp.Regexp
	resolve func(p *Parser, groups []string, baseTime time.Time) (time.Time, bool)
}

// absolutePatterns lists the supported grammar. When two rules match at the
// same offset, the earlier rule wins.
var absolutePatterns = []absolutePattern{
	{
		// 2026-03-05, on 2026-03-05
		re:      regexp.MustCompile(`(?i)\b(?:on\s+)?(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		resolve: resolveISO,
	},
	{
		// 3/5, 3/5/26, on 3/5/2026 (month first)
		re:      regexp.MustCompile(`(?i)\b(?:on\s+)?(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?\b`),
		resolve: resolveNumeric,
	},
	{
		// March 5, Mar. 5th, on March 5, 2026
		re:      regexp.MustCompile(`(?i)\b(?:on\s+)?(` + monthAlternation + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s+(\d{4})\b)?`),
		resolve: resolveMonthDay,
	},
	{
		// 5 March, on the 5th of March, 5 March 2026
		re:      regexp.MustCompile(`(?i)\b(?:on\s+(?:the\s+)?)?(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlternation + `)\b(?:,?\s+(\d{4})\b)?`),
		resolve: resolveDayMonth,
	},
	{
		// in 3 days, in 2 weeks, in 1 month
		re:      regexp.MustCompile(`(?i)\bin\s+(\d{1,3})\s+(days?|weeks?|months?)\b`),
		resolve: resolveInDuration,
	},
	{
		// Friday, on Friday
		re:      regexp.MustCompile(`(?i)\b(?:on\s+)?(` + weekdayAlternation + `)\b`),
		resolve: resolveWeekday,
	},
}

// MatchAbsolute finds the earliest date phrase in text, in reading order.
// Year-less dates that already passed this year resolve to next year; bare
// weekday names resolve to the upcoming occurrence, today included.
func (p *Parser) MatchAbsolute(text string, baseTime time.Time) (Match, bool) {
	best := Match{Start: -1}

	for _, ap := range absolutePatterns {
		for _, idx := range ap.re.FindAllStringSubmatchIndex(text, -1) {
			if best.Start >= 0 && idx[0] >= best.Start {
				break
			}
			date, ok := ap.resolve(p, submatches(text, idx), baseTime)
			if !ok {
				continue
			}
			best = Match{Date: date, Start: idx[0], End: idx[1], Text: text[idx[0]:idx[1]]}
			break
		}
	}

	return best, best.Start >= 0
}

func submatches(text string, idx []int) []string {
	groups := make([]string, len(idx)/2)
	for i := range groups {
		if idx[2*i] >= 0 {
			groups[i] = text[idx[2*i]:idx[2*i+1]]
		}
	}
	return groups
}

func resolveISO(p *Parser, groups []string, _ time.Time) (time.Time, bool) {
	year, _ := strconv.Atoi(groups[1])
	month, _ := strconv.Atoi(groups[2])
	day, _ := strconv.Atoi(groups[3])
	return p.calendarDay(year, time.Month(month), day)
}

func resolveNumeric(p *Parser, groups []string, baseTime time.Time) (time.Time, bool) {
	month, _ := strconv.Atoi(groups[1])
	day, _ := strconv.Atoi(groups[2])
	if groups[3] == "" {
		return p.upcomingMonthDay(time.Month(month), day, baseTime)
	}
	year, _ := strconv.Atoi(groups[3])
	if len(groups[3]) == 2 {
		year += 2000
	}
	return p.calendarDay(year, time.Month(month), day)
}

func resolveMonthDay(p *Parser, groups []string, baseTime time.Time) (time.Time, bool) {
	return p.namedMonthDay(groups[1], groups[2], groups[3], baseTime)
}

func resolveDayMonth(p *Parser, groups []string, baseTime time.Time) (time.Time, bool) {
	return p.namedMonthDay(groups[2], groups[1], groups[3], baseTime)
}

func resolveInDuration(p *Parser, groups []string, baseTime time.Time) (time.Time, bool) {
	amount, err := strconv.Atoi(groups[1])
	if err != nil {
		return time.Time{}, false
	}
	return p.shiftByUnit(baseTime, amount, strings.ToLower(groups[2])), true
}

func resolveWeekday(p *Parser, groups []string, baseTime time.Time) (time.Time, bool) {
	target, err := WeekdayByName(groups[1])
	if err != nil {
		return time.Time{}, false
	}
	return p.ThisWeekday(baseTime, target), true
}

func (p *Parser) namedMonthDay(monthName, dayText, yearText string, baseTime time.Time) (time.Time, bool) {
	month, ok := monthsByName[strings.ToLower(monthName)]
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(dayText)
	if yearText == "" {
		return p.upcomingMonthDay(month, day, baseTime)
	}
	year, _ := strconv.Atoi(yearText)
	return p.calendarDay(year, month, day)
}

// upcomingMonthDay picks this year's occurrence unless it is already behind
// baseTime's day, in which case next year's is used.
func (p *Parser) upcomingMonthDay(month time.Month, day int, baseTime time.Time) (time.Time, bool) {
	today := p.StartOfDay(baseTime)
	date, ok := p.calendarDay(today.Year(), month, day)
	if !ok && month == time.February && day == 29 {
		// Feb 29 only exists in leap years; look ahead for the next one.
		for year := today.Year() + 1; year <= today.Year()+4; year++ {
			if date, ok = p.calendarDay(year, month, day); ok {
				return date, true
			}
		}
		return time.Time{}, false
	}
	if !ok {
		return time.Time{}, false
	}
	if date.Before(today) {
		return p.calendarDay(today.Year()+1, month, day)
	}
	return date, true
}

// calendarDay builds midnight of year/month/day, rejecting values that
// time.Date would silently normalize (Feb 30, month 13).
func (p *Parser) calendarDay(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if date.Year() != year || date.Month() != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}
