package nlparser_test

import (
	"testing"
	"time"

	"task-capture/pkg/nlparser"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"7:00 PM", 19, 0, true},
		{"7:00 pm", 19, 0, true},
		{"12:00 AM", 0, 0, true},
		{"12:30 PM", 12, 30, true},
		{"9:05 AM", 9, 5, true},
		{"13:00", 13, 0, true},
		{"0:15", 0, 15, true},
		{"25:00", 0, 0, false},
		{"10:75", 0, 0, false},
		{"13:00 PM", 0, 0, false},
		{"7", 0, 0, false},
		{"7:00 XM", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			hour, minute, ok := nlparser.ParseClock(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseClock(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && (hour != tt.hour || minute != tt.minute) {
				t.Errorf("ParseClock(%q) = %d:%02d, want %d:%02d", tt.in, hour, minute, tt.hour, tt.minute)
			}
		})
	}
}

func TestParsedInput_Start(t *testing.T) {
	d := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	clock := "7:30 PM"
	bad := "31:00"

	got, ok := nlparser.ParsedInput{Date: &d, Time: &clock}.Start()
	if !ok {
		t.Fatal("expected a start")
	}
	if want := time.Date(2025, 6, 11, 19, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Start() = %v, want %v", got, want)
	}

	if _, ok := (nlparser.ParsedInput{Date: &d}).Start(); ok {
		t.Error("Start() without time should report false")
	}
	if _, ok := (nlparser.ParsedInput{Date: &d, Time: &bad}).Start(); ok {
		t.Error("Start() with out-of-range time should report false")
	}
}

func TestIntent(t *testing.T) {
	for _, i := range []nlparser.Intent{nlparser.IntentEvent, nlparser.IntentTask, nlparser.IntentNote, nlparser.IntentUnknown} {
		if !i.IsValid() {
			t.Errorf("%q should be valid", i)
		}
	}
	if nlparser.Intent("reminder").IsValid() {
		t.Error("reminder should not be valid")
	}
	if nlparser.IntentEvent.String() != "event" {
		t.Errorf("String() = %q", nlparser.IntentEvent.String())
	}
}

func TestConfidencePercent(t *testing.T) {
	if got := nlparser.ConfidencePercent(0.7); got != 70 {
		t.Errorf("ConfidencePercent(0.7) = %d", got)
	}
	if got := nlparser.ConfidencePercent(0.3 + 0.2 + 0.1); got != 60 {
		t.Errorf("ConfidencePercent(0.6) = %d", got)
	}
}
