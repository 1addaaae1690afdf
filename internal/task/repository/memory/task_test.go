package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"task-capture/internal/model"
	"task-capture/internal/task/repository"
	"task-capture/internal/task/repository/memory"
	"task-capture/internal/task/repository/repotest"
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

func TestRepository(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repository.Repository {
		return memory.New(&mockLogger{})
	})
}

func TestCreateTask_DuplicateID(t *testing.T) {
	r := memory.New(&mockLogger{})
	opt := repository.CreateTaskOptions{ID: "a", UserID: "u1", Text: "x", Day: time.Now()}
	if _, err := r.CreateTask(context.Background(), opt); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if _, err := r.CreateTask(context.Background(), opt); err != repository.ErrFailedToInsert {
		t.Errorf("duplicate CreateTask() error = %v, want ErrFailedToInsert", err)
	}
}

func TestConcurrentCreate(t *testing.T) {
	r := memory.New(&mockLogger{})
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = r.CreateTask(context.Background(), repository.CreateTaskOptions{
				ID: fmt.Sprintf("id-%d", i), UserID: "u1", Status: model.TaskStatusEditing, Day: day,
			})
		}(i)
	}
	wg.Wait()

	lines, err := r.ListTasks(context.Background(), repository.ListTasksOptions{UserID: "u1", From: day, To: day.AddDate(0, 0, 1)})
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(lines) != 50 {
		t.Errorf("ListTasks() len = %d, want 50", len(lines))
	}
}
