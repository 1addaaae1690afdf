package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"task-capture/internal/task"
	tgDelivery "task-capture/internal/task/delivery/telegram"
	"task-capture/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int

	// Task domain
	taskUC          task.UseCase
	telegramHandler tgDelivery.Handler

	// readiness pings storage; nil means always ready
	readiness func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	// Task domain
	TaskUseCase     task.UseCase
	TelegramHandler tgDelivery.Handler

	// Readiness reports whether the backing store can serve traffic.
	Readiness func(ctx context.Context) error
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		taskUC:          cfg.TaskUseCase,
		telegramHandler: cfg.TelegramHandler,
		readiness:       cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}
