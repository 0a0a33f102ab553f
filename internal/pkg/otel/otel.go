package otel

import (
	"context"
	"sync"
	"time"

	"loanlink/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

var (
	tracerMu sync.RWMutex
	tracer   trace.Tracer

	connectionFailed bool
	connectionMutex  sync.Mutex
)

func noopShutdown(context.Context) error { return nil }

// Setup installs a batching OTLP/HTTP tracer provider. With no collector URL only the
// propagator is installed and spans are dropped.
func Setup(ctx context.Context, serviceName, collectorURL string) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if collectorURL == "" {
		logger.Info("OTLP collector not configured, tracing disabled")
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, err
	}

	connectionCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	traceExporter, err := otlptracehttp.New(connectionCtx,
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint(collectorURL),
	)
	if err != nil {
		handleConnectionError(err)
		return noopShutdown, nil
	}

	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp),
	)
	otel.SetTracerProvider(tracerProvider)

	tracerMu.Lock()
	tracer = tracerProvider.Tracer(serviceName)
	tracerMu.Unlock()

	logger.Info("OTLP tracing enabled", zap.String("collector", collectorURL))

	return func(ctx context.Context) error {
		cxt, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		return tracerProvider.Shutdown(cxt)
	}, nil
}

func GetTracer() trace.Tracer {
	tracerMu.RLock()
	defer tracerMu.RUnlock()
	if tracer == nil {
		return noop.NewTracerProvider().Tracer("")
	}
	return tracer
}

func handleConnectionError(err error) {
	connectionMutex.Lock()
	defer connectionMutex.Unlock()
	if !connectionFailed {
		logger.Error("OTLP connection error", err)
		connectionFailed = true
	}
}
