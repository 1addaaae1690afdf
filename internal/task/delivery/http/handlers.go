package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-capture/internal/middleware"
	"task-capture/pkg/response"
)

const calendarContentType = "text/calendar; charset=utf-8"

// Parse godoc
// @Summary     Preview a parse
// @Description Parses a line and returns the structured reading without storing it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Line to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Submit godoc
// @Summary     Capture a line
// @Description Parses a line and files it under the parsed day, or under the given date when none is found.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    false "User ID (default: anonymous)"
// @Param       body      body   submitReq true  "Line to capture"
// @Success     201 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newSubmitResp(output))
}

// ListDay godoc
// @Summary     List one day
// @Description Returns the lines filed under a day in capture order.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string false "User ID (default: anonymous)"
// @Param       date      query  string false "Day, YYYY-MM-DD or a phrase like tomorrow (default: today)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListDay(ctx, middleware.GetScope(ctx), req.toDayInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListDay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDayResp(output))
}

// ListWeek godoc
// @Summary     List one week
// @Description Returns the Sunday-first week containing the given day, grouped per day.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string false "User ID (default: anonymous)"
// @Param       date      query  string false "Any day of the week (default: today)"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/week [GET]
func (h *handler) ListWeek(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListWeek(ctx, middleware.GetScope(ctx), req.toWeekInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWeek: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWeekResp(output))
}

// Detail godoc
// @Summary     Get a line
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string false "User ID (default: anonymous)"
// @Param       id        path   string true  "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(ctx), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(output))
}

// Edit godoc
// @Summary     Edit a line
// @Description Replaces the text and parses it again. The line moves when the new text names another day.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  false "User ID (default: anonymous)"
// @Param       id        path   string  true  "Task ID"
// @Param       body      body   editReq true  "New text"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Edit(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// Delete godoc
// @Summary     Delete a line
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string false "User ID (default: anonymous)"
// @Param       id        path   string true  "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(ctx), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ExportCalendar godoc
// @Summary     Export as iCalendar
// @Description Returns the lines filed between from and to (inclusive, default: current week) as a text/calendar feed.
// @Tags        Tasks
// @Produce     text/calendar
// @Param       X-User-ID header string false "User ID (default: anonymous)"
// @Param       from      query  string false "First day, YYYY-MM-DD"
// @Param       to        query  string false "Last day, YYYY-MM-DD"
// @Success     200 {string} string "iCalendar document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar.ics [GET]
func (h *handler) ExportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var buf bytes.Buffer
	if _, err := h.uc.ExportCalendar(ctx, middleware.GetScope(ctx), req.toInput(), &buf); err != nil {
		h.l.Errorf(ctx, "uc.ExportCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tasks.ics"`)
	c.Data(http.StatusOK, calendarContentType, buf.Bytes())
}
