package datemath_test

import (
	"errors"
	"testing"
	"time"

	"task-capture/pkg/datemath"
)

func TestDaysUntil(t *testing.T) {
	for current := datemath.Sunday; current <= datemath.Saturday; current++ {
		for target := datemath.Sunday; target <= datemath.Saturday; target++ {
			next := datemath.DaysUntilNext(current, target)
			if next < 1 || next > 7 || (current+next-1)%7+1 != target {
				t.Errorf("DaysUntilNext(%d, %d) = %d", current, target, next)
			}
			if current == target && next != 7 {
				t.Errorf("DaysUntilNext(%d, %d) = %d, want 7", current, target, next)
			}

			this := datemath.DaysUntilThis(current, target)
			if this < 0 || this > 6 || (current+this-1)%7+1 != target {
				t.Errorf("DaysUntilThis(%d, %d) = %d", current, target, this)
			}
			if current == target && this != 0 {
				t.Errorf("DaysUntilThis(%d, %d) = %d, want 0", current, target, this)
			}
		}
	}
}

func TestWeekdayNumber(t *testing.T) {
	sunday := time.Date(2024, 4, 28, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if got := datemath.WeekdayNumber(sunday.AddDate(0, 0, i)); got != i+1 {
			t.Errorf("WeekdayNumber(+%d) = %d, want %d", i, got, i+1)
		}
	}
}

func TestWeekdayByName(t *testing.T) {
	got, err := datemath.WeekdayByName(" Friday ")
	if err != nil || got != datemath.Friday {
		t.Fatalf("WeekdayByName(Friday) = %d, %v", got, err)
	}

	_, err = datemath.WeekdayByName("fri")
	if !errors.Is(err, datemath.ErrUnknownWeekday) {
		t.Fatalf("expected ErrUnknownWeekday, got %v", err)
	}
}

func TestWeekdayName(t *testing.T) {
	if got := datemath.WeekdayName(datemath.Sunday); got != "sunday" {
		t.Errorf("WeekdayName(Sunday) = %q", got)
	}
	if got := datemath.WeekdayName(0); got != "" {
		t.Errorf("WeekdayName(0) = %q, want empty", got)
	}
	names := datemath.WeekdayNames()
	names[0] = "changed"
	if datemath.WeekdayName(datemath.Sunday) != "sunday" {
		t.Error("WeekdayNames() must return a copy")
	}
}
