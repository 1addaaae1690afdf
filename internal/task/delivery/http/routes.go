package http

import (
	"github.com/gin-gonic/gin"

	"task-capture/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// resolves the caller scope first.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/parse", h.Parse)
	rg.GET("/calendar.ics", mw.Scope(), h.ExportCalendar)

	tasks := rg.Group("/tasks", mw.Scope())
	{
		tasks.POST("", h.Submit)
		tasks.GET("", h.ListDay)
		tasks.GET("/week", h.ListWeek)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Edit)
		tasks.DELETE("/:id", h.Delete)
	}
}
