package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-capture/internal/middleware"
	"task-capture/internal/model"
)

// Handler exposes the mapped router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, middleware.Config{RateLimitPerMin: srv.rateLimitPerMin})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())
	srv.gin.Use(mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production, rate limit %d/min", srv.rateLimitPerMin)
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s, rate limit %d/min", srv.environment, srv.rateLimitPerMin)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	if err := srv.setupTaskDomain(ctx, api, mw); err != nil {
		return err
	}

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	return nil
}
