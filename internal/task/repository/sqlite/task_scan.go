package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"task-capture/internal/model"
	"task-capture/pkg/datemath"
	"task-capture/pkg/nlparser"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanLine(row rowScanner) (model.TaskLine, error) {
	var line model.TaskLine
	var status, day, createdAt, updatedAt string
	var parsed sql.NullString

	err := row.Scan(&line.ID, &line.UserID, &line.Text, &status, &day, &parsed,
		&line.CalendarEventID, &line.CalendarLink, &createdAt, &updatedAt)
	if err != nil {
		return model.TaskLine{}, err
	}

	line.Status = model.TaskStatus(status)
	line.Day, err = time.ParseInLocation(datemath.DayLayout, day, r.loc)
	if err != nil {
		return model.TaskLine{}, fmt.Errorf("parse day: %w", err)
	}
	line.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.TaskLine{}, fmt.Errorf("parse created_at: %w", err)
	}
	line.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return model.TaskLine{}, fmt.Errorf("parse updated_at: %w", err)
	}

	if parsed.Valid {
		var p nlparser.ParsedInput
		if err := json.Unmarshal([]byte(parsed.String), &p); err != nil {
			return model.TaskLine{}, fmt.Errorf("decode parsed: %w", err)
		}
		if p.Date != nil {
			d := p.Date.In(r.loc)
			p.Date = &d
		}
		line.Parsed = &p
	}
	return line, nil
}

// encodeParsed stores the parse result as JSON; nil becomes NULL.
func encodeParsed(p *nlparser.ParsedInput) (any, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func formatDay(day time.Time) string {
	return day.Format(datemath.DayLayout)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
