package http

import (
	"github.com/gin-gonic/gin"

	"task-capture/internal/task"
	"task-capture/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Submit(c *gin.Context)
	ListDay(c *gin.Context)
	ListWeek(c *gin.Context)
	Detail(c *gin.Context)
	Edit(c *gin.Context)
	Delete(c *gin.Context)
	ExportCalendar(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
