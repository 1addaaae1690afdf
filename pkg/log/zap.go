package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	requestIDField = "request_id"
)

// ZapConfig selects level, output shape and colouring.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger writing to stderr.
func Init(cfg ZapConfig) Logger {
	return NewWithCore(newCore(cfg, zapcore.Lock(os.Stderr)), cfg.Mode)
}

// NewWithCore wraps an existing zap core. Tests use it with an observer core.
func NewWithCore(core zapcore.Core, mode string) Logger {
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if mode != ModeProduction {
		opts = append(opts, zap.Development())
	}
	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

func newCore(cfg ZapConfig, out zapcore.WriteSyncer) zapcore.Core {
	var encCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	return zapcore.NewCore(encoder, out, zap.NewAtomicLevelAt(parseLevel(cfg.Level)))
}

func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return l.sugar.With(requestIDField, id)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, args ...any) { l.with(ctx).Debug(args...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	l.with(ctx).Debugf(template, args...)
}
func (l *zapLogger) Info(ctx context.Context, args ...any) { l.with(ctx).Info(args...) }
func (l *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	l.with(ctx).Infof(template, args...)
}
func (l *zapLogger) Warn(ctx context.Context, args ...any) { l.with(ctx).Warn(args...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	l.with(ctx).Warnf(template, args...)
}
func (l *zapLogger) Error(ctx context.Context, args ...any) { l.with(ctx).Error(args...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	l.with(ctx).Errorf(template, args...)
}
func (l *zapLogger) DPanic(ctx context.Context, args ...any) { l.with(ctx).DPanic(args...) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, args ...any) {
	l.with(ctx).DPanicf(template, args...)
}
func (l *zapLogger) Panic(ctx context.Context, args ...any) { l.with(ctx).Panic(args...) }
func (l *zapLogger) Panicf(ctx context.Context, template string, args ...any) {
	l.with(ctx).Panicf(template, args...)
}
func (l *zapLogger) Fatal(ctx context.Context, args ...any) { l.with(ctx).Fatal(args...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	l.with(ctx).Fatalf(template, args...)
}
