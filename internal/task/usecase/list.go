package usecase

import (
	"context"

	"task-capture/internal/model"
	"task-capture/internal/task"
	"task-capture/internal/task/repository"
	"task-capture/pkg/datemath"
)

func (uc *implUseCase) ListDay(ctx context.Context, sc model.Scope, input task.ListDayInput) (task.DayTasks, error) {
	sc = model.ScopeOrAnonymous(sc)
	day, err := uc.resolveDay(input.Date, uc.parser.Now())
	if err != nil {
		return task.DayTasks{}, err
	}

	lines, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID: sc.UserID,
		From:   day,
		To:     uc.parser.Dates().AddDays(day, 1),
	})
	if err != nil {
		return task.DayTasks{}, uc.mapRepoError(err, "failed to list tasks")
	}

	return task.DayTasks{Day: day, Tasks: lines}, nil
}

// ListWeek groups the week's lines per day. Days without lines are present
// with an empty list.
func (uc *implUseCase) ListWeek(ctx context.Context, sc model.Scope, input task.ListWeekInput) (task.WeekTasks, error) {
	sc = model.ScopeOrAnonymous(sc)
	day, err := uc.resolveDay(input.Date, uc.parser.Now())
	if err != nil {
		return task.WeekTasks{}, err
	}

	dates := uc.parser.Dates()
	start := dates.WeekStart(day)

	lines, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID: sc.UserID,
		From:   start,
		To:     dates.AddDays(start, daysPerWeek),
	})
	if err != nil {
		return task.WeekTasks{}, uc.mapRepoError(err, "failed to list tasks")
	}

	week := task.WeekTasks{Start: start, Days: make([]task.DayTasks, daysPerWeek)}
	slot := make(map[string]int, daysPerWeek)
	for i := range week.Days {
		d := dates.AddDays(start, i)
		week.Days[i] = task.DayTasks{Day: d, Tasks: []model.TaskLine{}}
		slot[d.Format(datemath.DayLayout)] = i
	}
	for _, line := range lines {
		i, ok := slot[dates.FormatDay(line.Day)]
		if !ok {
			continue
		}
		week.Days[i].Tasks = append(week.Days[i].Tasks, line)
	}

	return week, nil
}
