package datemath_test

import (
	"testing"
	"time"

	"task-capture/pkg/datemath"
)

func TestMatchAbsolute(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		text     string
		want     time.Time
		wantText string
		wantOK   bool
	}{
		{name: "iso", text: "dentist 2024-06-15 at 3pm", want: day(2024, 6, 15), wantText: "2024-06-15", wantOK: true},
		{name: "numeric month first", text: "pay rent 6/1", want: day(2024, 6, 1), wantText: "6/1", wantOK: true},
		{name: "numeric short year", text: "renew passport 7/4/25", want: day(2025, 7, 4), wantText: "7/4/25", wantOK: true},
		{name: "numeric full year", text: "trip 12/24/2024", want: day(2024, 12, 24), wantText: "12/24/2024", wantOK: true},
		{name: "numeric passed rolls over", text: "taxes 4/15", want: day(2025, 4, 15), wantText: "4/15", wantOK: true},
		{name: "month day", text: "Party on June 3rd", want: day(2024, 6, 3), wantText: "on June 3rd", wantOK: true},
		{name: "on month day with time", text: "Dentist on March 5 at 10:30am", want: day(2025, 3, 5), wantText: "on March 5", wantOK: true},
		{name: "on iso", text: "launch on 2024-06-15", want: day(2024, 6, 15), wantText: "on 2024-06-15", wantOK: true},
		{name: "on numeric", text: "pay rent On 6/1", want: day(2024, 6, 1), wantText: "On 6/1", wantOK: true},
		{name: "on the day of month", text: "invoice on the 5th of July", want: day(2024, 7, 5), wantText: "on the 5th of July", wantOK: true},
		{name: "on inside a word", text: "salon 6/1", want: day(2024, 6, 1), wantText: "6/1", wantOK: true},
		{name: "month day year", text: "Conference March 5, 2025", want: day(2025, 3, 5), wantText: "March 5, 2025", wantOK: true},
		{name: "abbreviated month", text: "review Aug. 9", want: day(2024, 8, 9), wantText: "Aug. 9", wantOK: true},
		{name: "today as month day", text: "standup May 1", want: day(2024, 5, 1), wantText: "May 1", wantOK: true},
		{name: "day of month", text: "send invoice 5th of July", want: day(2024, 7, 5), wantText: "5th of July", wantOK: true},
		{name: "day month passed", text: "birthday 2 January", want: day(2025, 1, 2), wantText: "2 January", wantOK: true},
		{name: "in days", text: "follow up in 3 days", want: day(2024, 5, 4), wantText: "in 3 days", wantOK: true},
		{name: "in month", text: "renew in 1 month", want: day(2024, 6, 1), wantText: "in 1 month", wantOK: true},
		{name: "in weeks", text: "check back in 2 weeks", want: day(2024, 5, 15), wantText: "in 2 weeks", wantOK: true},
		{name: "bare weekday", text: "dinner friday", want: day(2024, 5, 3), wantText: "friday", wantOK: true},
		{name: "on weekday", text: "Interview on Monday", want: day(2024, 5, 6), wantText: "on Monday", wantOK: true},
		{name: "weekday is today", text: "yoga wednesday", want: day(2024, 5, 1), wantText: "wednesday", wantOK: true},
		{name: "earliest wins", text: "friday or 6/1", want: day(2024, 5, 3), wantText: "friday", wantOK: true},
		{name: "invalid day skipped", text: "due 2/30 or June 3", want: day(2024, 6, 3), wantText: "June 3", wantOK: true},
		{name: "invalid iso", text: "due 2024-13-01", wantOK: false},
		{name: "score is not a date", text: "won 24/7", wantOK: false},
		{name: "time only", text: "call at 5pm", wantOK: false},
		{name: "plain text", text: "buy groceries", wantOK: false},
		{name: "month word without day", text: "march on", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.MatchAbsolute(tt.text, baseTime)
			if ok != tt.wantOK {
				t.Fatalf("MatchAbsolute(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("MatchAbsolute(%q) date = %v, want %v", tt.text, got.Date, tt.want)
			}
			if got.Text != tt.wantText {
				t.Errorf("MatchAbsolute(%q) text = %q, want %q", tt.text, got.Text, tt.wantText)
			}
			if tt.text[got.Start:got.End] != got.Text {
				t.Errorf("MatchAbsolute(%q) offsets [%d:%d] do not cover %q", tt.text, got.Start, got.End, got.Text)
			}
		})
	}
}

func TestMatchAbsolute_LeapDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	got, ok := parser.MatchAbsolute("anniversary Feb 29", baseTime)
	if !ok {
		t.Fatal("expected a match for Feb 29")
	}
	want := time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)
	if !got.Date.Equal(want) {
		t.Errorf("got = %v, want %v", got.Date, want)
	}
}

func TestMatchAbsolute_MonthEndClamps(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name     string
		baseTime time.Time
		text     string
		want     time.Time
	}{
		{name: "jan 31 to feb", baseTime: time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC), text: "Review in 1 month", want: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)},
		{name: "jan 31 to leap feb", baseTime: time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC), text: "Review in 1 month", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "mar 31 to jun", baseTime: time.Date(2025, 3, 31, 8, 0, 0, 0, time.UTC), text: "Review in 3 months", want: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
		{name: "dec 31 across year", baseTime: time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC), text: "Review in 2 months", want: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
		{name: "mid month unchanged", baseTime: time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC), text: "Review in 1 month", want: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.MatchAbsolute(tt.text, tt.baseTime)
			if !ok {
				t.Fatalf("MatchAbsolute(%q) found no date", tt.text)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("MatchAbsolute(%q) date = %v, want %v", tt.text, got.Date, tt.want)
			}
		})
	}
}
