// Package logtrace provides structured, correlation-aware logging on
// top of zap. All output goes to stderr so stdout stays free for the
// generated byte stream.
package logtrace

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type correlationIDKey struct{}

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Setup installs the process-wide logger. Safe to call more than once;
// the last call wins.
func Setup(service, environment string, level slog.Level) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	logger = l.With(
		zap.String("service", service),
		zap.String("environment", environment),
	)
}

// CtxWithCorrelationID returns a context carrying a correlation ID that
// every log call with this context will include.
func CtxWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Debug logs a debug-level message with the given fields.
func Debug(ctx context.Context, msg string, fields Fields) {
	log(ctx, zapcore.DebugLevel, msg, fields)
}

// Info logs an info-level message with the given fields.
func Info(ctx context.Context, msg string, fields Fields) {
	log(ctx, zapcore.InfoLevel, msg, fields)
}

// Warn logs a warn-level message with the given fields.
func Warn(ctx context.Context, msg string, fields Fields) {
	log(ctx, zapcore.WarnLevel, msg, fields)
}

// Error logs an error-level message with the given fields.
func Error(ctx context.Context, msg string, fields Fields) {
	log(ctx, zapcore.ErrorLevel, msg, fields)
}

// Fatal logs the message and fields, then exits the process.
func Fatal(ctx context.Context, msg string, fields Fields) {
	current().Fatal(msg, zapFields(ctx, fields)...)
}

func log(ctx context.Context, level zapcore.Level, msg string, fields Fields) {
	if ce := current().Check(level, msg); ce != nil {
		ce.Write(zapFields(ctx, fields)...)
	}
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func zapFields(ctx context.Context, fields Fields) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+1)
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		out = append(out, zap.String(FieldCorrelationID, id))
	}
	for key, value := range fields {
		out = append(out, zap.Any(key, value))
	}
	return out
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level <= slog.LevelDebug:
		return zapcore.DebugLevel
	case level <= slog.LevelInfo:
		return zapcore.InfoLevel
	case level <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
