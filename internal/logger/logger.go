package logger

import (
	"context"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// log stays a no-op logger until Initialize is called, so packages can log from tests freely
	log = zap.NewNop()

	sentryClient *sentry.Client
)

// Config holds logger configuration
type Config struct {
	Debug bool
	// Service names the logger and is reported as the sentry "service" tag
	Service         string
	SentryDSN       string
	SentryClient    *sentry.Client
	BreadcrumbLevel zapcore.Level
	Tags            map[string]string
}

// Initialize replaces the global logger. Errors are forwarded to sentry when a DSN is set.
func Initialize(cfg Config) error {
	base, err := newZapConfig(cfg.Debug).Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	if cfg.Service != "" {
		base = base.Named(cfg.Service)
	}

	if cfg.SentryDSN == "" {
		log = base
		return nil
	}

	core, err := newSentryCore(cfg)
	if err != nil {
		return err
	}
	log = zapsentry.AttachCoreToLogger(core, base)
	return nil
}

func newZapConfig(debug bool) zap.Config {
	if debug {
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return zc
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return zc
}

func newSentryCore(cfg Config) (zapcore.Core, error) {
	sentryClient = cfg.SentryClient
	if sentryClient == nil {
		client, err := sentry.NewClient(sentry.ClientOptions{
			Dsn:   cfg.SentryDSN,
			Debug: cfg.Debug,
		})
		if err != nil {
			return nil, err
		}
		sentryClient = client
	}

	breadcrumbLevel := cfg.BreadcrumbLevel
	if breadcrumbLevel == zapcore.InvalidLevel {
		breadcrumbLevel = zapcore.InfoLevel
	}

	tags := make(map[string]string, len(cfg.Tags)+1)
	for k, v := range cfg.Tags {
		tags[k] = v
	}
	if cfg.Service != "" {
		tags["service"] = cfg.Service
	}

	return zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   breadcrumbLevel,
		Tags:              tags,
	}, zapsentry.NewSentryClientFromClient(sentryClient))
}

// Flush flushes any buffered sentry events
func Flush(timeout time.Duration) {
	if sentryClient != nil {
		sentryClient.Flush(timeout)
	}
}

// FromContext returns the global logger bound to the sentry scope carried by ctx
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}
	return log.With(zapsentry.Context(ctx))
}

// Sync flushes the zap buffers
func Sync() {
	_ = log.Sync()
}

// Default returns the global logger
func Default() *zap.Logger {
	return log
}

func errMessage(err error) string {
	if err == nil {
		return "error occurred"
	}
	return err.Error()
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

// Error logs err as the message. A nil err is logged as a generic error.
func Error(err error, fields ...zap.Field) {
	log.Error(errMessage(err), fields...)
}

func ErrorCtx(ctx context.Context, err error, fields ...zap.Field) {
	FromContext(ctx).Error(errMessage(err), fields...)
}

// Fatal logs and exits the process
func Fatal(msg string, fields ...zap.Field) {
	log.Fatal(msg, fields...)
}

func FatalCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}
