package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-capture/config"
	_ "task-capture/docs" // Swagger docs
	"task-capture/internal/httpserver"
	"task-capture/internal/retention"
	"task-capture/internal/task"
	tgDelivery "task-capture/internal/task/delivery/telegram"
	"task-capture/internal/task/repository"
	"task-capture/internal/task/repository/memory"
	"task-capture/internal/task/repository/sqlite"
	"task-capture/internal/task/usecase"
	"task-capture/pkg/datemath"
	"task-capture/pkg/gcalendar"
	"task-capture/pkg/log"
	"task-capture/pkg/nlparser"
	"task-capture/pkg/telegram"
)

// @title       Task Capture API
// @description Natural-language task capture: parse a line, file it on the right day, export it as iCalendar.
// @version     1
// @host        localhost:8080
// @BasePath    /
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "task-capture stopped with error: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Task Capture...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser
	loc, err := cfg.Parser.Location()
	if err != nil {
		return err
	}
	parser := nlparser.New(datemath.NewParserInLocation(loc))
	logger.Infof(ctx, "Parser timezone: %s", loc)

	// 4. Store
	repo, readiness, closeStore, err := openStore(ctx, cfg, logger, loc)
	if err != nil {
		return err
	}
	defer closeStore()

	// 5. Google Calendar (optional)
	calendarCfg := usecase.CalendarConfig{
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		EventDuration: cfg.GoogleCalendar.EventDuration(),
	}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate the token file")
		} else {
			calendarCfg.Client = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task UseCase
	taskUC := usecase.New(logger, parser, repo, calendarCfg)

	// 7. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramHandler = setupTelegram(ctx, cfg.Telegram, logger, taskUC)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 8. Retention janitor (optional)
	if cfg.Retention.Enabled {
		janitor, jErr := retention.New(logger, taskUC, retention.Config{
			Schedule: cfg.Retention.Schedule,
			Days:     cfg.Retention.Days,
			Location: loc,
		})
		if jErr != nil {
			return jErr
		}
		janitor.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			janitor.Stop(stopCtx)
		}()
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		TaskUseCase:     taskUC,
		TelegramHandler: telegramHandler,
		Readiness:       readiness,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 10. Run
	return httpServer.Run(ctx)
}

// openStore builds the configured task repository. The returned readiness
// check is nil for the in-memory store.
func openStore(ctx context.Context, cfg *config.Config, logger log.Logger, loc *time.Location) (repository.Repository, func(context.Context) error, func(), error) {
	if cfg.Store.Driver != config.StoreDriverSQLite {
		logger.Warn(ctx, "Using in-memory task store: lines are lost on restart")
		return memory.New(logger), nil, func() {}, nil
	}

	db, err := sqlite.Open(cfg.Store.SQLitePath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := sqlite.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}
	logger.Infof(ctx, "SQLite task store at %s", cfg.Store.SQLitePath)

	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Warnf(context.Background(), "close sqlite: %v", err)
		}
	}
	return sqlite.New(db, logger, loc), pingFunc(db), closeDB, nil
}

func pingFunc(db *sql.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		return db.PingContext(ctx)
	}
}

func setupTelegram(ctx context.Context, cfg config.TelegramConfig, logger log.Logger, uc task.UseCase) tgDelivery.Handler {
	bot := telegram.NewBot(cfg.BotToken)
	handler := tgDelivery.New(logger, uc, bot, cfg.SecretToken)

	// Register webhook: auto-detect ngrok or fallback to manual config
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		tunnelURL, err := detectNgrokURL(ctx, defaultNgrokAPI, ngrokAttempts, ngrokRetryDelay)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = tunnelURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL != "" {
		if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	return handler
}
