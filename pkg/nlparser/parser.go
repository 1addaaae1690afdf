package nlparser

import (
	"time"

	"task-capture/pkg/datemath"
)

// Parser turns freeform lines into ParsedInput values. It holds no mutable
// state and is safe for concurrent use.
type Parser struct {
	dates *datemath.Parser
	now   func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock replaces the wall clock used by Parse.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a parser that resolves days with dates. A nil dates parser
// works in UTC.
func New(dates *datemath.Parser, opts ...Option) *Parser {
	if dates == nil {
		dates = datemath.NewParserInLocation(time.UTC)
	}
	p := &Parser{dates: dates, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewParser creates a parser for an IANA timezone name.
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		return nil, err
	}
	return New(dates, opts...), nil
}

// Parse reads text relative to the parser's clock.
func (p *Parser) Parse(text string) ParsedInput {
	return p.ParseAt(text, p.now())
}

// ParseAt reads text relative to now. It never fails: stages that find
// nothing leave their fields absent.
func (p *Parser) ParseAt(text string, now time.Time) ParsedInput {
	date, clock, phrase := p.detectDateTime(text, now)
	location := detectLocation(text)
	intent := classifyIntent(text)
	title := extractTitle(text, phrase, clock, location)

	return ParsedInput{
		OriginalText: text,
		Intent:       intent,
		Date:         date,
		Time:         clock,
		Location:     location,
		Title:        title,
		Confidence:   scoreConfidence(date != nil, clock != nil, location != nil, intent),
	}
}

// Now returns the parser's current time in its location.
func (p *Parser) Now() time.Time {
	return p.now().In(p.dates.Location())
}

// Dates exposes the day arithmetic the parser resolves against.
func (p *Parser) Dates() *datemath.Parser {
	return p.dates
}

// Location returns the timezone days are resolved in.
func (p *Parser) Location() *time.Location {
	return p.dates.Location()
}
