package datemath_test

import (
	"errors"
	"testing"
	"time"

	"task-capture/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Unknown phrase",
			relative: "some random day",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "This Wednesday (from Wed)",
			relative: "this wednesday",
			want:     startOfBase,
		},
		{
			name:     "This Monday (from Wed)",
			relative: "this monday",
			want:     startOfBase.AddDate(0, 0, 5),
		},
		{
			name:     "ISO day",
			relative: "2024-06-15",
			want:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Mixed case",
			relative: "  Tomorrow ",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestParse_MonthFromMonthEnd(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)

	got, err := parser.Parse("in 1 month", baseTime)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse() got = %v, want %v", got, want)
	}
}

func TestParse_UnknownPhraseSentinel(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	_, err := parser.Parse("whenever", time.Now())
	if !errors.Is(err, datemath.ErrUnknownPhrase) {
		t.Fatalf("expected ErrUnknownPhrase, got %v", err)
	}

	_, err = parser.Parse("next funday", time.Now())
	if !errors.Is(err, datemath.ErrUnknownWeekday) {
		t.Fatalf("expected ErrUnknownWeekday, got %v", err)
	}
}

func TestMatchRelative(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		text   string
		want   time.Time
		wantOK bool
	}{
		{name: "today", text: "call mom today", want: startOfBase, wantOK: true},
		{name: "tomorrow", text: "lunch with sam tomorrow", want: startOfBase.AddDate(0, 0, 1), wantOK: true},
		{name: "yesterday", text: "paid rent yesterday", want: startOfBase.AddDate(0, 0, -1), wantOK: true},
		{name: "today beats tomorrow", text: "tomorrow or today", want: startOfBase, wantOK: true},
		{name: "next friday", text: "meeting at central park next friday", want: startOfBase.AddDate(0, 0, 2), wantOK: true},
		{name: "next same weekday", text: "gym next wednesday", want: startOfBase.AddDate(0, 0, 7), wantOK: true},
		{name: "this same weekday", text: "gym this wednesday", want: startOfBase, wantOK: true},
		{name: "this monday rolls forward", text: "standup this monday", want: startOfBase.AddDate(0, 0, 5), wantOK: true},
		{name: "weekday order wins over text order", text: "next saturday or sunday", want: startOfBase.AddDate(0, 0, 4), wantOK: true},
		{name: "next without weekday", text: "next time", wantOK: false},
		{name: "bare weekday", text: "dinner friday", wantOK: false},
		{name: "nothing", text: "buy groceries", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.MatchRelative(tt.text, baseTime)
			if ok != tt.wantOK {
				t.Fatalf("MatchRelative() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("MatchRelative() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextAndThisWeekday_AllCombinations(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	// 2024-04-28 is a Sunday.
	sunday := time.Date(2024, 4, 28, 9, 0, 0, 0, time.UTC)

	for offset := 0; offset < 7; offset++ {
		base := sunday.AddDate(0, 0, offset)
		current := datemath.WeekdayNumber(base)
		for target := datemath.Sunday; target <= datemath.Saturday; target++ {
			next := parser.NextWeekday(base, target)
			if datemath.WeekdayNumber(next) != target {
				t.Errorf("NextWeekday(%d -> %d) landed on weekday %d", current, target, datemath.WeekdayNumber(next))
			}
			gap := int(next.Sub(parser.StartOfDay(base)).Hours() / 24)
			if gap < 1 || gap > 7 {
				t.Errorf("NextWeekday(%d -> %d) gap = %d, want 1..7", current, target, gap)
			}

			this := parser.ThisWeekday(base, target)
			if datemath.WeekdayNumber(this) != target {
				t.Errorf("ThisWeekday(%d -> %d) landed on weekday %d", current, target, datemath.WeekdayNumber(this))
			}
			gap = int(this.Sub(parser.StartOfDay(base)).Hours() / 24)
			if gap < 0 || gap > 6 {
				t.Errorf("ThisWeekday(%d -> %d) gap = %d, want 0..6", current, target, gap)
			}
		}
	}
}

func TestAddDays_AcrossDST(t *testing.T) {
	parser, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	loc := parser.Location()
	// DST starts 2024-03-10 in New York.
	base := time.Date(2024, 3, 9, 22, 0, 0, 0, loc)

	got := parser.AddDays(base, 1)
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("AddDays() got = %v, want %v", got, want)
	}

	got = parser.AddDays(base, 2)
	if got.Hour() != 0 || got.Day() != 11 {
		t.Fatalf("AddDays() after DST got = %v, want midnight of the 11th", got)
	}
}

func TestWeekStart(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC) // Wednesday
	want := time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC)

	if got := parser.WeekStart(base); !got.Equal(want) {
		t.Errorf("WeekStart() got = %v, want %v", got, want)
	}
	if got := parser.WeekStart(want); !got.Equal(want) {
		t.Errorf("WeekStart(sunday) got = %v, want %v", got, want)
	}
}

func TestFormatDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	if got := parser.FormatDay(time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)); got != "2024-05-01" {
		t.Errorf("FormatDay() got = %q", got)
	}
}
