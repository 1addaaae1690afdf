package retention

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"task-capture/pkg/log"
)

// DefaultSchedule runs the janitor once a day, shortly after midnight.
const DefaultSchedule = "5 0 * * *"

// Pruner deletes every stored line filed before a day.
type Pruner interface {
	Prune(ctx context.Context, before time.Time) (int, error)
}

// Config controls what the janitor keeps.
type Config struct {
	// Schedule is a five-field cron expression.
	Schedule string
	// Days is how many days of lines survive, counting today.
	Days int
	// Location decides where "today" starts. Nil means UTC.
	Location *time.Location
	// Now overrides the wall clock in tests.
	Now func() time.Time
}

// Janitor periodically removes lines older than the retention window.
type Janitor struct {
	l      log.Logger
	pruner Pruner
	cfg    Config
	cron   *cron.Cron
}

// New validates cfg and registers the prune job. Start must be called to run it.
func New(l log.Logger, pruner Pruner, cfg Config) (*Janitor, error) {
	if pruner == nil {
		return nil, errors.New("retention: pruner is required")
	}
	if cfg.Days < 1 {
		return nil, fmt.Errorf("retention: days must be at least 1, got %d", cfg.Days)
	}
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	j := &Janitor{
		l:      l,
		pruner: pruner,
		cfg:    cfg,
		cron:   cron.New(cron.WithLocation(cfg.Location)),
	}

	if _, err := j.cron.AddFunc(cfg.Schedule, func() {
		if _, err := j.RunOnce(context.Background()); err != nil {
			j.l.Errorf(context.Background(), "retention.Janitor: %v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("retention: invalid schedule %q: %w", cfg.Schedule, err)
	}

	return j, nil
}

// Cutoff is the first day kept: lines filed before it are pruned.
func (j *Janitor) Cutoff() time.Time {
	t := j.cfg.Now().In(j.cfg.Location)
	return time.Date(t.Year(), t.Month(), t.Day()-(j.cfg.Days-1), 0, 0, 0, 0, j.cfg.Location)
}

// RunOnce prunes immediately and reports how many lines were removed.
func (j *Janitor) RunOnce(ctx context.Context) (int, error) {
	cutoff := j.Cutoff()
	n, err := j.pruner.Prune(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune before %s: %w", cutoff.Format(time.DateOnly), err)
	}
	j.l.Infof(ctx, "retention.Janitor: pruned %d line(s) filed before %s", n, cutoff.Format(time.DateOnly))
	return n, nil
}

// Start runs the schedule in its own goroutine.
func (j *Janitor) Start() {
	j.cron.Start()
	j.l.Infof(context.Background(), "retention.Janitor: started, schedule %q, keeping %d day(s)", j.cfg.Schedule, j.cfg.Days)
}

// Stop halts the schedule and waits for a running prune to finish or ctx to end.
func (j *Janitor) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
}
