package middleware

import (
	"time"

	"loanlink/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.uber.org/zap"
)

const (
	outcomeKey      = attribute.Key("loanlink.outcome")
	unmatchedRoute  = "unmatched"
	metricUnitMilli = "ms"
)

type httpInstruments struct {
	latency   metric.Int64Histogram
	requests  metric.Int64Counter
	bodyBytes metric.Int64Histogram
}

// NewMetricMiddleware records latency, request count and response size per route.
// Each record carries the route template, method, status and an outcome of
// "success" (status below 400), "client_error" or "server_error".
func NewMetricMiddleware(meter metric.Meter) gin.HandlerFunc {
	ins := newHTTPInstruments(meter)

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		attrs := metric.WithAttributes(
			semconv.HTTPRouteKey.String(route),
			semconv.HTTPMethodKey.String(c.Request.Method),
			semconv.HTTPStatusCodeKey.Int(status),
			outcomeKey.String(outcome(status)),
		)

		ctx := c.Request.Context()
		ins.latency.Record(ctx, time.Since(start).Milliseconds(), attrs)
		ins.requests.Add(ctx, 1, attrs)
		ins.bodyBytes.Record(ctx, int64(max(c.Writer.Size(), 0)), attrs)
	}
}

// newHTTPInstruments falls back to no-op instruments the meter refuses to create.
func newHTTPInstruments(meter metric.Meter) httpInstruments {
	var fallback noop.Meter

	latency, err := meter.Int64Histogram("loanlink.http.latency",
		metric.WithUnit(metricUnitMilli),
		metric.WithDescription("Latency of API requests."),
	)
	if err != nil {
		logger.Warn("latency histogram unavailable", zap.Error(err))
		latency, _ = fallback.Int64Histogram("loanlink.http.latency")
	}

	requests, err := meter.Int64Counter("loanlink.http.requests",
		metric.WithDescription("API requests by route and outcome."),
	)
	if err != nil {
		logger.Warn("request counter unavailable", zap.Error(err))
		requests, _ = fallback.Int64Counter("loanlink.http.requests")
	}

	bodyBytes, err := meter.Int64Histogram("loanlink.http.response_size",
		metric.WithUnit("By"),
		metric.WithDescription("Size of API response bodies."),
	)
	if err != nil {
		logger.Warn("response size histogram unavailable", zap.Error(err))
		bodyBytes, _ = fallback.Int64Histogram("loanlink.http.response_size")
	}

	return httpInstruments{latency: latency, requests: requests, bodyBytes: bodyBytes}
}

func outcome(status int) string {
	switch {
	case status >= 500:
		return "server_error"
	case status >= 400:
		return "client_error"
	default:
		return "success"
	}
}
