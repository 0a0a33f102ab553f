package logger

import (
	"context"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Define context key for trace ID
type contextKey string

const traceIDKey contextKey = "trace_id"

var log atomic.Pointer[zap.Logger]

func init() {
	log.Store(zap.NewNop())
}

// GetTraceID retrieves trace_id from context, returns empty string if missing
func GetTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v := ctx.Value(traceIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WithTraceID returns a new context with the given trace ID
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

func parseLevel(logLevel string) zapcore.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Init sets up the global JSON logger writing to stdout.
func Init(logLevel string) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(logLevel))
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "msg"
	config.EncoderConfig.StacktraceKey = ""
	config.OutputPaths = []string{"stdout"}

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}
	SetLogger(l)
}

// SetLogger replaces the global logger. Passing nil installs a no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log.Store(l)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = log.Load().Sync()
}

// CONTEXT-AWARE LOGGING //

func withTrace(ctx context.Context, fields []zap.Field) []zap.Field {
	if traceID := GetTraceID(ctx); traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}
	return fields
}

// CtxInfo logs an info message with trace ID
func CtxInfo(ctx context.Context, msg string, fields ...zap.Field) {
	log.Load().Info(msg, withTrace(ctx, fields)...)
}

func CtxError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	fields = append(withTrace(ctx, fields), zap.Error(err))
	log.Load().Error(msg, fields...)
}

// CtxDebug logs debug messages
func CtxDebug(ctx context.Context, msg string, fields ...zap.Field) {
	log.Load().Debug(msg, withTrace(ctx, fields)...)
}

// CtxWarn logs warnings
func CtxWarn(ctx context.Context, msg string, fields ...zap.Field) {
	log.Load().Warn(msg, withTrace(ctx, fields)...)
}

// NON-CONTEXT LOGGING //

func Info(msg string, fields ...zap.Field) {
	log.Load().Info(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	log.Load().Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Load().Warn(msg, fields...)
}

func Error(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	log.Load().Error(msg, fields...)
}
