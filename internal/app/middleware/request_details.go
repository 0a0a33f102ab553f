package middleware

import (
	"time"

	"loanlink/internal/pkg/consts"
	"loanlink/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttachRequestDetails assigns each request a trace id, echoes it in X-Request-Id and
// logs one line per request once the handler chain has finished.
func AttachRequestDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(consts.RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		ctx := logger.WithTraceID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(consts.RequestIDKey, requestID)
		c.Writer.Header().Set(consts.RequestIDHeader, requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("latency_ms", time.Since(start).Milliseconds()),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		logger.CtxInfo(ctx, "request completed", fields...)
	}
}
