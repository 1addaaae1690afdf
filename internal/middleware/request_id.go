package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-capture/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags the request context with the caller's X-Request-ID, or a
// fresh one, so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog writes one line per request after it completes.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		m.l.Infof(c.Request.Context(), "%s %s -> %d (%d bytes)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), c.Writer.Size())
	}
}
