package http

import (
	"strings"
	"time"

	"task-capture/internal/model"
	"task-capture/internal/task"
	"task-capture/pkg/nlparser"
	"task-capture/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text string     `json:"text"`
	Now  *time.Time `json:"now"` // RFC 3339, defaults to the server clock
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput() task.ParseInput {
	input := task.ParseInput{Text: r.Text}
	if r.Now != nil {
		input.Now = *r.Now
	}
	return input
}

// ---

type submitReq struct {
	Text string `json:"text" binding:"required,max=1000"`
	Date string `json:"date"` // fallback day when the text has none
}

func (r submitReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return task.ErrEmptyInput
	}
	return nil
}

func (r submitReq) toInput() task.SubmitInput {
	return task.SubmitInput{
		Text:         r.Text,
		FallbackDate: r.Date,
	}
}

// ---

type editReq struct {
	ID   string `json:"-"` // populated from URI param
	Text string `json:"text" binding:"required,max=1000"`
}

func (r editReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return task.ErrEmptyInput
	}
	return nil
}

func (r editReq) toInput() task.EditInput {
	return task.EditInput{ID: r.ID, Text: r.Text}
}

// ---

type listReq struct {
	Date string `form:"date"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toDayInput() task.ListDayInput {
	return task.ListDayInput{Date: r.Date}
}

func (r listReq) toWeekInput() task.ListWeekInput {
	return task.ListWeekInput{Date: r.Date}
}

// ---

type exportReq struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (r exportReq) validate() error { return nil }

func (r exportReq) toInput() task.ExportInput {
	return task.ExportInput{From: r.From, To: r.To}
}

// --- Response DTOs ---

type parsedResp struct {
	OriginalText string  `json:"original_text"`
	Intent       string  `json:"intent"`
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	Location     *string `json:"location,omitempty"`
	Title        string  `json:"title"`
	Confidence   float64 `json:"confidence"`
}

func newParsedResp(p nlparser.ParsedInput) parsedResp {
	resp := parsedResp{
		OriginalText: p.OriginalText,
		Intent:       p.Intent.String(),
		Time:         p.Time,
		Location:     p.Location,
		Title:        p.Title,
		Confidence:   p.Confidence,
	}
	if p.Date != nil {
		d := p.Date.Format(response.DateFormat)
		resp.Date = &d
	}
	return resp
}

type taskResp struct {
	ID           string        `json:"id"`
	Text         string        `json:"text"`
	Status       string        `json:"status"`
	Date         response.Date `json:"date"`
	Parsed       *parsedResp   `json:"parsed,omitempty"`
	CalendarLink string        `json:"calendar_link,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func newTaskResp(line model.TaskLine) taskResp {
	resp := taskResp{
		ID:           line.ID,
		Text:         line.Text,
		Status:       string(line.Status),
		Date:         response.Date(line.Day),
		CalendarLink: line.CalendarLink,
		CreatedAt:    line.CreatedAt,
		UpdatedAt:    line.UpdatedAt,
	}
	if line.Parsed != nil {
		p := newParsedResp(*line.Parsed)
		resp.Parsed = &p
	}
	return resp
}

func newTaskResps(lines []model.TaskLine) []taskResp {
	items := make([]taskResp, len(lines))
	for i, line := range lines {
		items[i] = newTaskResp(line)
	}
	return items
}

type parseResp struct {
	Parsed       parsedResp        `json:"parsed"`
	Notification task.Notification `json:"notification"`
	Summary      string            `json:"summary"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	return parseResp{
		Parsed:       newParsedResp(out.Parsed),
		Notification: out.Notification,
		Summary:      out.Notification.String(),
	}
}

type submitResp struct {
	Task         taskResp          `json:"task"`
	Notification task.Notification `json:"notification"`
	Summary      string            `json:"summary"`
}

func (h *handler) newSubmitResp(out task.SubmitOutput) submitResp {
	return submitResp{
		Task:         newTaskResp(out.Task),
		Notification: out.Notification,
		Summary:      out.Notification.String(),
	}
}

type dayResp struct {
	Date  response.Date `json:"date"`
	Tasks []taskResp    `json:"tasks"`
}

func newDayResp(out task.DayTasks) dayResp {
	return dayResp{
		Date:  response.Date(out.Day),
		Tasks: newTaskResps(out.Tasks),
	}
}

type weekResp struct {
	Start response.Date `json:"start"`
	Days  []dayResp     `json:"days"`
}

func (h *handler) newWeekResp(out task.WeekTasks) weekResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = newDayResp(d)
	}
	return weekResp{
		Start: response.Date(out.Start),
		Days:  days,
	}
}
