package retention_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"task-capture/internal/retention"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockPruner struct {
	mu      sync.Mutex
	calls   []time.Time
	removed int
	err     error
}

func (m *mockPruner) Prune(ctx context.Context, before time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, before)
	return m.removed, m.err
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		pruner retention.Pruner
		cfg    retention.Config
	}{
		{name: "nil pruner", pruner: nil, cfg: retention.Config{Days: 30}},
		{name: "zero days", pruner: &mockPruner{}, cfg: retention.Config{Days: 0}},
		{name: "bad schedule", pruner: &mockPruner{}, cfg: retention.Config{Days: 30, Schedule: "every tuesday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := retention.New(&mockLogger{}, tt.pruner, tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestCutoff(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name string
		days int
		loc  *time.Location
		now  time.Time
		want time.Time
	}{
		{
			name: "one day keeps only today",
			days: 1,
			loc:  time.UTC,
			now:  time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC),
			want: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "thirty days crosses a month",
			days: 30,
			loc:  time.UTC,
			now:  time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC),
			want: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "today follows the configured location",
			days: 1,
			loc:  tokyo,
			now:  time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 11, 0, 0, 0, 0, tokyo),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := retention.New(&mockLogger{}, &mockPruner{}, retention.Config{
				Days:     tt.days,
				Location: tt.loc,
				Now:      func() time.Time { return tt.now },
			})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := j.Cutoff(); !got.Equal(tt.want) {
				t.Errorf("Cutoff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunOnce(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC)

	t.Run("passes cutoff and count", func(t *testing.T) {
		p := &mockPruner{removed: 4}
		j, err := retention.New(&mockLogger{}, p, retention.Config{Days: 7, Now: func() time.Time { return now }})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		n, err := j.RunOnce(context.Background())
		if err != nil {
			t.Fatalf("RunOnce: %v", err)
		}
		if n != 4 {
			t.Errorf("removed = %d, want 4", n)
		}
		if len(p.calls) != 1 || !p.calls[0].Equal(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected prune calls: %v", p.calls)
		}
	})

	t.Run("wraps pruner errors", func(t *testing.T) {
		boom := errors.New("disk full")
		j, err := retention.New(&mockLogger{}, &mockPruner{err: boom}, retention.Config{Days: 7, Now: func() time.Time { return now }})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		if _, err := j.RunOnce(context.Background()); !errors.Is(err, boom) {
			t.Errorf("expected wrapped %v, got %v", boom, err)
		}
	})
}

func TestStartStop(t *testing.T) {
	j, err := retention.New(&mockLogger{}, &mockPruner{}, retention.Config{Days: 30})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	j.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	j.Stop(ctx)
	if ctx.Err() != nil {
		t.Error("Stop waited for the deadline instead of returning")
	}
}
