package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-capture/internal/middleware"
	taskHTTP "task-capture/internal/task/delivery/http"
)

// setupTaskDomain registers the task capture routes under /api/v1.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
