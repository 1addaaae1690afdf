package nlparser

import (
	"regexp"
	"strings"
	"time"
)

var timePattern = regexp.MustCompile(`(?i)(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*([ap]m)?`)

// detectDateTime finds the day a line refers to and, only when a day was
// found, the first time-of-day reading. phrase is the matched absolute date
// text; relative phrases are left to the title patterns.
func (p *Parser) detectDateTime(text string, now time.Time) (date *time.Time, clock *string, phrase string) {
	if day, ok := p.dates.MatchRelative(strings.ToLower(text), now); ok {
		return &day, extractTime(text), ""
	}

	if match, ok := p.dates.MatchAbsolute(text, now); ok {
		// Blank out the date phrase so "June 3 at 1pm" reads 1pm, not 3.
		masked := text[:match.Start] + strings.Repeat(" ", match.End-match.Start) + text[match.End:]
		day := match.Date
		return &day, extractTime(masked), match.Text
	}

	return nil, nil, ""
}

func extractTime(text string) *string {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var b strings.Builder
	b.WriteString(m[1])
	b.WriteByte(':')
	if m[2] != "" {
		b.WriteString(m[2])
	} else {
		b.WriteString("00")
	}
	if m[3] != "" {
		b.WriteByte(' ')
		b.WriteString(strings.ToUpper(m[3]))
	}

	clock := b.String()
	return &clock
}
