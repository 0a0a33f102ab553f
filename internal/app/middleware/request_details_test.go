package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"loanlink/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(buf), zap.DebugLevel)
	logger.SetLogger(zap.New(core))
	t.Cleanup(func() { logger.SetLogger(nil) })
	return buf
}

func newRequestDetailsRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AttachRequestDetails())
	router.GET("/loans/:id", func(c *gin.Context) {
		*seen = logger.GetTraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return router
}

func TestAttachRequestDetails_GeneratesTraceID(t *testing.T) {
	logs := captureLogs(t)
	var seen string

	req := httptest.NewRequest(http.MethodGet, "/loans/42", nil)
	resp := httptest.NewRecorder()
	newRequestDetailsRouter(&seen).ServeHTTP(resp, req)

	header := resp.Header().Get("X-Request-Id")
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
	assert.Equal(t, header, seen)

	out := logs.String()
	assert.Contains(t, out, `"trace_id":"`+header+`"`)
	assert.Contains(t, out, `"route":"/loans/:id"`)
	assert.Contains(t, out, `"status":200`)
}

func TestAttachRequestDetails_KeepsValidIncomingID(t *testing.T) {
	captureLogs(t)
	var seen string
	incoming := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/loans/42", nil)
	req.Header.Set("X-Request-Id", incoming)
	resp := httptest.NewRecorder()
	newRequestDetailsRouter(&seen).ServeHTTP(resp, req)

	assert.Equal(t, incoming, resp.Header().Get("X-Request-Id"))
	assert.Equal(t, incoming, seen)
}

func TestAttachRequestDetails_ReplacesMalformedID(t *testing.T) {
	captureLogs(t)
	var seen string

	req := httptest.NewRequest(http.MethodGet, "/loans/42", nil)
	req.Header.Set("X-Request-Id", "<script>")
	resp := httptest.NewRecorder()
	newRequestDetailsRouter(&seen).ServeHTTP(resp, req)

	assert.NotEqual(t, "<script>", resp.Header().Get("X-Request-Id"))
	assert.Equal(t, resp.Header().Get("X-Request-Id"), seen)
}
