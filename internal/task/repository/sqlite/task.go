package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"task-capture/internal/model"
	repo "task-capture/internal/task/repository"
)

const selectColumns = `SELECT id, user_id, text, status, day, parsed, calendar_event_id, calendar_link, created_at, updated_at FROM task_lines`

// CreateTask inserts a line at the end of its day.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.TaskLine, error) {
	const query = `
		INSERT INTO task_lines (id, user_id, text, status, day, position, parsed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM task_lines), ?, ?, ?)`

	parsed, err := encodeParsed(opt.Parsed)
	if err != nil {
		r.l.Errorf(ctx, "%s: encode parsed: %v", r.dsn("CreateTask"), err)
		return model.TaskLine{}, repo.ErrFailedToInsert
	}
	created := formatTime(opt.CreatedAt)

	_, err = r.db.ExecContext(ctx, query,
		opt.ID, opt.UserID, opt.Text, string(opt.Status), formatDay(opt.Day), parsed, created, created,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.TaskLine{}, repo.ErrFailedToInsert
	}

	return r.GetTask(ctx, repo.GetTaskOptions{UserID: opt.UserID, ID: opt.ID})
}

func (r *implRepository) GetTask(ctx context.Context, opt repo.GetTaskOptions) (model.TaskLine, error) {
	query := selectColumns + ` WHERE id = ? AND user_id = ? LIMIT 1`

	line, err := r.scanLine(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.TaskLine{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.TaskLine{}, repo.ErrFailedToGet
	}
	return line, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.TaskLine, error) {
	query := selectColumns + ` WHERE user_id = ? AND day >= ? AND day < ? ORDER BY day ASC, position ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, formatDay(opt.From), formatDay(opt.To))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	lines := make([]model.TaskLine, 0)
	for rows.Next() {
		line, err := r.scanLine(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return lines, nil
}

// UpdateTask rewrites a line. SET expressions see the old row, so the
// position only moves when the day changes.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.TaskLine, error) {
	const query = `
		UPDATE task_lines
		SET text = ?, status = ?, parsed = ?, calendar_event_id = ?, calendar_link = ?, updated_at = ?,
			position = CASE WHEN day = ? THEN position ELSE (SELECT COALESCE(MAX(position), 0) + 1 FROM task_lines) END,
			day = ?
		WHERE id = ? AND user_id = ?`

	parsed, err := encodeParsed(opt.Parsed)
	if err != nil {
		r.l.Errorf(ctx, "%s: encode parsed: %v", r.dsn("UpdateTask"), err)
		return model.TaskLine{}, repo.ErrFailedToUpdate
	}
	day := formatDay(opt.Day)

	res, err := r.db.ExecContext(ctx, query,
		opt.Text, string(opt.Status), parsed, opt.CalendarEventID, opt.CalendarLink, formatTime(opt.UpdatedAt),
		day, day, opt.ID, opt.UserID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.TaskLine{}, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: rows affected: %v", r.dsn("UpdateTask"), err)
		return model.TaskLine{}, repo.ErrFailedToUpdate
	}
	if n == 0 {
		return model.TaskLine{}, repo.ErrNotFound
	}

	return r.GetTask(ctx, repo.GetTaskOptions{UserID: opt.UserID, ID: opt.ID})
}

func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM task_lines WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: rows affected: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *implRepository) PruneTasks(ctx context.Context, opt repo.PruneTasksOptions) (int, error) {
	const query = `DELETE FROM task_lines WHERE day < ?`

	res, err := r.db.ExecContext(ctx, query, formatDay(opt.Before))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("PruneTasks"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: rows affected: %v", r.dsn("PruneTasks"), err)
		return 0, repo.ErrFailedToDelete
	}
	return int(n), nil
}
