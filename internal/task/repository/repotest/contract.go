// Package repotest holds behaviour checks shared by every task repository.
package repotest

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-capture/internal/model"
	"task-capture/internal/task/repository"
	"task-capture/pkg/nlparser"
)

// Factory returns an empty repository whose days are in UTC.
type Factory func(t *testing.T) repository.Repository

var (
	day1    = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	day2    = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	day3    = time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	created = time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC)
)

// Run exercises the Repository contract against repositories from newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Run("CreateAndGet", func(t *testing.T) { testCreateAndGet(t, newRepo(t)) })
	t.Run("ListOrder", func(t *testing.T) { testListOrder(t, newRepo(t)) })
	t.Run("UpdateKeepsOrMovesDay", func(t *testing.T) { testUpdate(t, newRepo(t)) })
	t.Run("UpdateUnknown", func(t *testing.T) { testUpdateUnknown(t, newRepo(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newRepo(t)) })
	t.Run("Prune", func(t *testing.T) { testPrune(t, newRepo(t)) })
}

func create(t *testing.T, r repository.Repository, user, id string, day time.Time) model.TaskLine {
	t.Helper()
	line, err := r.CreateTask(context.Background(), repository.CreateTaskOptions{
		ID:        id,
		UserID:    user,
		Text:      "line " + id,
		Status:    model.TaskStatusEditing,
		Day:       day,
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("CreateTask(%s) error = %v", id, err)
	}
	return line
}

func ids(lines []model.TaskLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.ID
	}
	return out
}

func equalIDs(got []model.TaskLine, want ...string) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func testCreateAndGet(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	loc := "Central Park"
	parsed := &nlparser.ParsedInput{
		OriginalText: "Meeting at Central Park",
		Intent:       nlparser.IntentEvent,
		Date:         &day2,
		Location:     &loc,
		Title:        "Meeting",
		Confidence:   0.8,
	}

	_, err := r.CreateTask(ctx, repository.CreateTaskOptions{
		ID: "a", UserID: "u1", Text: "Meeting at Central Park", Status: model.TaskStatusEditing,
		Day: day2, Parsed: parsed, CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	got, err := r.GetTask(ctx, repository.GetTaskOptions{UserID: "u1", ID: "a"})
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if got.Text != "Meeting at Central Park" || got.Status != model.TaskStatusEditing {
		t.Errorf("GetTask() = %+v", got)
	}
	if !got.Day.Equal(day2) {
		t.Errorf("Day = %v, want %v", got.Day, day2)
	}
	if !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(created) {
		t.Errorf("timestamps = %v / %v, want %v", got.CreatedAt, got.UpdatedAt, created)
	}
	if got.Parsed == nil || got.Parsed.Title != "Meeting" || got.Parsed.Location == nil || *got.Parsed.Location != loc {
		t.Errorf("Parsed = %+v", got.Parsed)
	}
	if got.Parsed != nil && (got.Parsed.Date == nil || !got.Parsed.Date.Equal(day2)) {
		t.Errorf("Parsed.Date = %v, want %v", got.Parsed.Date, day2)
	}

	if _, err := r.GetTask(ctx, repository.GetTaskOptions{UserID: "u2", ID: "a"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetTask() for other user error = %v, want ErrNotFound", err)
	}
	if _, err := r.GetTask(ctx, repository.GetTaskOptions{UserID: "u1", ID: "missing"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetTask(missing) error = %v, want ErrNotFound", err)
	}
}

func testListOrder(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	create(t, r, "u1", "a", day2)
	create(t, r, "u1", "b", day1)
	create(t, r, "u1", "c", day1)
	create(t, r, "u1", "d", day3)
	create(t, r, "u2", "e", day1)

	got, err := r.ListTasks(ctx, repository.ListTasksOptions{UserID: "u1", From: day1, To: day3})
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if !equalIDs(got, "b", "c", "a") {
		t.Errorf("ListTasks() = %v, want [b c a]", ids(got))
	}

	got, err = r.ListTasks(ctx, repository.ListTasksOptions{UserID: "nobody", From: day1, To: day3})
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ListTasks() for unknown user = %v, want empty non-nil", got)
	}
}

func testUpdate(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	create(t, r, "u1", "a", day1)
	create(t, r, "u1", "b", day1)
	create(t, r, "u1", "c", day2)
	updated := created.Add(time.Hour)

	got, err := r.UpdateTask(ctx, repository.UpdateTaskOptions{
		UserID: "u1", ID: "a", Text: "edited", Status: model.TaskStatusProcessed, Day: day1,
		CalendarEventID: "evt", CalendarLink: "https://cal/evt", UpdatedAt: updated,
	})
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if got.Text != "edited" || got.Status != model.TaskStatusProcessed || got.CalendarLink != "https://cal/evt" || got.CalendarEventID != "evt" {
		t.Errorf("UpdateTask() = %+v", got)
	}
	if !got.UpdatedAt.Equal(updated) || !got.CreatedAt.Equal(created) {
		t.Errorf("timestamps = %v / %v", got.CreatedAt, got.UpdatedAt)
	}

	list, _ := r.ListTasks(ctx, repository.ListTasksOptions{UserID: "u1", From: day1, To: day3})
	if !equalIDs(list, "a", "b", "c") {
		t.Errorf("after same-day update = %v, want [a b c]", ids(list))
	}

	if _, err := r.UpdateTask(ctx, repository.UpdateTaskOptions{
		UserID: "u1", ID: "a", Text: "moved", Status: model.TaskStatusProcessed, Day: day2, UpdatedAt: updated,
	}); err != nil {
		t.Fatalf("UpdateTask() move error = %v", err)
	}

	list, _ = r.ListTasks(ctx, repository.ListTasksOptions{UserID: "u1", From: day1, To: day3})
	if !equalIDs(list, "b", "c", "a") {
		t.Errorf("after move = %v, want [b c a]", ids(list))
	}
}

func testUpdateUnknown(t *testing.T, r repository.Repository) {
	create(t, r, "u1", "a", day1)
	_, err := r.UpdateTask(context.Background(), repository.UpdateTaskOptions{UserID: "u2", ID: "a", Text: "x", Day: day1})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateTask() error = %v, want ErrNotFound", err)
	}
}

func testDelete(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	create(t, r, "u1", "a", day1)
	create(t, r, "u1", "b", day1)

	if err := r.DeleteTask(ctx, repository.DeleteTaskOptions{UserID: "u2", ID: "a"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("DeleteTask() for other user error = %v, want ErrNotFound", err)
	}
	if err := r.DeleteTask(ctx, repository.DeleteTaskOptions{UserID: "u1", ID: "a"}); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if err := r.DeleteTask(ctx, repository.DeleteTaskOptions{UserID: "u1", ID: "a"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second DeleteTask() error = %v, want ErrNotFound", err)
	}

	list, _ := r.ListTasks(ctx, repository.ListTasksOptions{UserID: "u1", From: day1, To: day2})
	if !equalIDs(list, "b") {
		t.Errorf("after delete = %v, want [b]", ids(list))
	}
}

func testPrune(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	create(t, r, "u1", "a", day1)
	create(t, r, "u2", "b", day1)
	create(t, r, "u1", "c", day2)

	n, err := r.PruneTasks(ctx, repository.PruneTasksOptions{Before: day2})
	if err != nil {
		t.Fatalf("PruneTasks() error = %v", err)
	}
	if n != 2 {
		t.Errorf("PruneTasks() = %d, want 2", n)
	}
	if _, err := r.GetTask(ctx, repository.GetTaskOptions{UserID: "u1", ID: "a"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("pruned line still readable: %v", err)
	}
	if _, err := r.GetTask(ctx, repository.GetTaskOptions{UserID: "u1", ID: "c"}); err != nil {
		t.Errorf("kept line error = %v", err)
	}
}
