package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// helper to set test logger writing JSON to buffer
func setupTestLogger(buf *bytes.Buffer, level zapcore.Level) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.MessageKey = "msg"
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(buf), level)
	SetLogger(zap.New(core))
}

func TestGetTraceID(t *testing.T) {
	ctxWithID := context.WithValue(context.Background(), traceIDKey, "id123")
	assert.Equal(t, "id123", GetTraceID(ctxWithID))

	assert.Empty(t, GetTraceID(context.Background()))

	ctxWrongType := context.WithValue(context.Background(), traceIDKey, 42)
	assert.Empty(t, GetTraceID(ctxWrongType))
}

func TestCtxLogging_InjectsTraceID(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, zap.DebugLevel)

	ctx := WithTraceID(context.Background(), "trace-edge")
	CtxInfo(ctx, "info with trace ID")

	out := buf.String()
	assert.Contains(t, out, `"trace_id":"trace-edge"`)
	assert.Contains(t, out, `"msg":"info with trace ID"`)
}

func TestCtxLogging_NoTraceID(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, zap.DebugLevel)

	CtxWarn(context.Background(), "warn without trace ID")

	out := buf.String()
	assert.NotContains(t, out, `"trace_id"`)
	assert.Contains(t, out, `"msg":"warn without trace ID"`)
}

func TestCtxError_IncludesErrorAndTraceID(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, zap.DebugLevel)

	ctx := WithTraceID(context.Background(), "trace-error")
	CtxError(ctx, "error occurred", errors.New("fatal error"), zap.String("loan_id", "abc"))

	out := buf.String()
	assert.Contains(t, out, `"error":"fatal error"`)
	assert.Contains(t, out, `"trace_id":"trace-error"`)
	assert.Contains(t, out, `"loan_id":"abc"`)
}

func TestNonContextError_IncludesErrorField(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, zap.DebugLevel)

	Error("error message", errors.New("fail"))

	out := buf.String()
	assert.Contains(t, out, `"error":"fail"`)
	assert.Contains(t, out, `"msg":"error message"`)
	assert.NotContains(t, out, `"trace_id"`)
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, zap.InfoLevel)

	Debug("debug should not show")
	Info("info should show")

	out := buf.String()
	assert.NotContains(t, out, "debug should not show")
	assert.Contains(t, out, "info should show")
}

func TestCtxDebug_WithAndWithoutTraceID(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, zap.DebugLevel)

	CtxDebug(WithTraceID(context.Background(), "rid-debug"), "debug message with id")
	out := buf.String()
	assert.Contains(t, out, `"trace_id":"rid-debug"`)

	buf.Reset()

	CtxDebug(context.Background(), "debug no id")
	out = buf.String()
	assert.NotContains(t, out, `"trace_id"`)
	assert.Contains(t, out, `"msg":"debug no id"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zap.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zap.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zap.InfoLevel, parseLevel("unknown"))
}

func TestInitAndNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Init("info")
		Warn("test warning message")
	})

	SetLogger(nil)
	assert.NotPanics(t, func() {
		Info("dropped")
		Sync()
	})
}
