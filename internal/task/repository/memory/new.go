package memory

import (
	"sync"
	"time"

	"task-capture/internal/model"
	"task-capture/internal/task/repository"
	"task-capture/pkg/datemath"
	"task-capture/pkg/log"
)

// lineRef locates a stored line.
type lineRef struct {
	userID string
	day    string
}

type implRepository struct {
	l  log.Logger
	mu sync.RWMutex
	// days maps user -> day key -> lines in filing order.
	days  map[string]map[string][]model.TaskLine
	index map[string]lineRef
}

// New creates an in-process Repository. Contents are lost on restart.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:     l,
		days:  make(map[string]map[string][]model.TaskLine),
		index: make(map[string]lineRef),
	}
}

func dayKey(day time.Time) string {
	return day.Format(datemath.DayLayout)
}
