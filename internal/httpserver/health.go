package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-capture/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "task-capture"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the task store answers.
// @Summary Readiness Check
// @Description Check if the API and its store are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Store unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.readiness != nil {
		if err := srv.readiness(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "store unavailable",
			})
			return
		}
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
