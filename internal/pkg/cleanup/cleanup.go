package cleanup

import (
	"context"
	"net/http"
	"time"

	"loanlink/internal/pkg/db/mongo"
	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/logger"
)

const (
	httpShutdownTimeout  = 8 * time.Second
	mongoShutdownTimeout = 5 * time.Second
)

// CleanupResources stops the HTTP server first so no request is left holding a
// connection, then releases the publisher, database and tracer.
func CleanupResources(
	ctx context.Context,
	server *http.Server,
	pubsubPublisher interface{ Close() error },
	mongoClient *mongo.MongoClient,
	shutdownTracing func(context.Context) error,
) {
	logger.CtxInfo(ctx, log_messages.CleanupStarted)

	cleanupHTTPServer(server, ctx)
	cleanupPubSubResource(pubsubPublisher, "PubSub publisher", ctx)
	cleanupMongoResource(mongoClient, ctx)
	cleanupTracing(shutdownTracing, ctx)

	logger.CtxInfo(ctx, log_messages.CleanupCompleted)
}

func cleanupHTTPServer(server *http.Server, ctx context.Context) {
	if server == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, httpShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.CtxError(ctx, "Failed to shutdown HTTP server", err)
	} else {
		logger.CtxInfo(ctx, "HTTP server shutdown successfully")
	}
}

func cleanupPubSubResource(resource interface{ Close() error }, resourceName string, ctx context.Context) {
	if resource == nil {
		return
	}
	if err := resource.Close(); err != nil {
		logger.CtxError(ctx, "Failed to close "+resourceName, err)
	} else {
		logger.CtxInfo(ctx, resourceName+" closed successfully")
	}
}

func cleanupMongoResource(mongoClient *mongo.MongoClient, ctx context.Context) {
	if mongoClient == nil || mongoClient.Client == nil {
		return
	}
	mongoCtx, cancel := context.WithTimeout(ctx, mongoShutdownTimeout)
	defer cancel()
	if err := mongo.Disconnect(mongoCtx, mongoClient.Client); err != nil {
		logger.CtxError(mongoCtx, "Failed to disconnect MongoDB client", err)
	} else {
		logger.CtxInfo(mongoCtx, "MongoDB client disconnected successfully")
	}
}

func cleanupTracing(shutdown func(context.Context) error, ctx context.Context) {
	if shutdown == nil {
		return
	}
	if err := shutdown(ctx); err != nil {
		logger.CtxError(ctx, "Failed to shutdown tracer provider", err)
	} else {
		logger.CtxInfo(ctx, "Tracer provider shutdown successfully")
	}
}
