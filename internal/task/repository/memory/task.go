package memory

import (
	"context"
	"sort"

	"task-capture/internal/model"
	repo "task-capture/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.TaskLine, error) {
	line := model.TaskLine{
		ID:        opt.ID,
		UserID:    opt.UserID,
		Text:      opt.Text,
		Status:    opt.Status,
		Day:       opt.Day,
		Parsed:    opt.Parsed,
		CreatedAt: opt.CreatedAt,
		UpdatedAt: opt.CreatedAt,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[line.ID]; exists {
		r.l.Errorf(ctx, "task/repository/memory.CreateTask: duplicate id %s", line.ID)
		return model.TaskLine{}, repo.ErrFailedToInsert
	}
	r.appendLocked(line)
	return line, nil
}

func (r *implRepository) GetTask(ctx context.Context, opt repo.GetTaskOptions) (model.TaskLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, i, ref, ok := r.findLocked(opt.UserID, opt.ID)
	if !ok {
		return model.TaskLine{}, repo.ErrNotFound
	}
	return r.days[ref.userID][ref.day][i], nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.TaskLine, error) {
	from, to := dayKey(opt.From), dayKey(opt.To)

	r.mu.RLock()
	defer r.mu.RUnlock()

	byDay := r.days[opt.UserID]
	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		if k >= from && k < to {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	lines := make([]model.TaskLine, 0)
	for _, k := range keys {
		lines = append(lines, byDay[k]...)
	}
	return lines, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.TaskLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines, i, ref, ok := r.findLocked(opt.UserID, opt.ID)
	if !ok {
		return model.TaskLine{}, repo.ErrNotFound
	}

	line := lines[i]
	line.Text = opt.Text
	line.Status = opt.Status
	line.Day = opt.Day
	line.Parsed = opt.Parsed
	line.CalendarEventID = opt.CalendarEventID
	line.CalendarLink = opt.CalendarLink
	line.UpdatedAt = opt.UpdatedAt

	if dayKey(opt.Day) == ref.day {
		lines[i] = line
		return line, nil
	}

	r.removeLocked(ref, i)
	r.appendLocked(line)
	return line, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, i, ref, ok := r.findLocked(opt.UserID, opt.ID)
	if !ok {
		return repo.ErrNotFound
	}
	r.removeLocked(ref, i)
	return nil
}

func (r *implRepository) PruneTasks(ctx context.Context, opt repo.PruneTasksOptions) (int, error) {
	before := dayKey(opt.Before)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, byDay := range r.days {
		for k, lines := range byDay {
			if k >= before {
				continue
			}
			for _, line := range lines {
				delete(r.index, line.ID)
			}
			removed += len(lines)
			delete(byDay, k)
		}
	}
	return removed, nil
}

// findLocked returns the day slice holding id and its position in it.
func (r *implRepository) findLocked(userID, id string) ([]model.TaskLine, int, lineRef, bool) {
	ref, ok := r.index[id]
	if !ok || ref.userID != userID {
		return nil, 0, lineRef{}, false
	}
	lines := r.days[ref.userID][ref.day]
	for i := range lines {
		if lines[i].ID == id {
			return lines, i, ref, true
		}
	}
	return nil, 0, lineRef{}, false
}

func (r *implRepository) appendLocked(line model.TaskLine) {
	byDay, ok := r.days[line.UserID]
	if !ok {
		byDay = make(map[string][]model.TaskLine)
		r.days[line.UserID] = byDay
	}
	k := dayKey(line.Day)
	byDay[k] = append(byDay[k], line)
	r.index[line.ID] = lineRef{userID: line.UserID, day: k}
}

func (r *implRepository) removeLocked(ref lineRef, i int) {
	lines := r.days[ref.userID][ref.day]
	delete(r.index, lines[i].ID)

	rest := make([]model.TaskLine, 0, len(lines)-1)
	rest = append(rest, lines[:i]...)
	rest = append(rest, lines[i+1:]...)
	if len(rest) == 0 {
		delete(r.days[ref.userID], ref.day)
		return
	}
	r.days[ref.userID][ref.day] = rest
}
