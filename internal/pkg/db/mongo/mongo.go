package mongo

import (
	"context"
	"strings"
	"time"

	"loanlink/internal/pkg/config"
	"loanlink/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func ConnectToMongoDB(ctx context.Context, cfg config.MongoConfig) (*MongoClient, error) {
	return connectWithConnector(ctx, cfg, &DefaultMongoConnector{})
}

func connectWithConnector(ctx context.Context, cfg config.MongoConfig, connector MongoConnector) (*MongoClient, error) {
	safeURI := redactMongoURI(cfg.URI)

	logger.CtxInfo(ctx, "Connecting to MongoDB",
		zap.String("uri", safeURI),
		zap.String("database", cfg.DBName),
	)

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	connectTimeout := cfg.ConnectTimeout
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout * 2).
		SetHeartbeatInterval(10 * time.Second).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	client, err := connector.Connect(ctx, clientOpts)
	if err != nil {
		logger.CtxError(ctx, "Failed to connect to MongoDB", err,
			zap.String("uri", safeURI),
			zap.String("database", cfg.DBName),
		)
		return nil, err
	}

	if err := connector.Ping(ctx, client); err != nil {
		logger.CtxError(ctx, "MongoDB ping failed", err,
			zap.String("uri", safeURI),
			zap.String("database", cfg.DBName),
		)
		if derr := connector.Disconnect(ctx, client); derr != nil {
			logger.CtxWarn(ctx, "Failed to release MongoDB client after ping failure", zap.Error(derr))
		}
		return nil, err
	}

	logger.CtxInfo(ctx, "Pinged your deployment. Successfully connected to MongoDB",
		zap.String("uri", safeURI),
		zap.String("database", cfg.DBName),
	)

	return &MongoClient{
		Client:   client,
		Database: client.Database(cfg.DBName),
	}, nil
}

// Ping checks the deployment is reachable. Used by the health endpoint.
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

func Disconnect(ctx context.Context, client *mongo.Client) error {
	return client.Disconnect(ctx)
}

// redactMongoURI hides username and password from a MongoDB URI. Seed lists are
// handled too, so the userinfo is cut out of the text rather than re-encoded.
func redactMongoURI(uri string) string {
	scheme, rest, found := strings.Cut(uri, "://")
	if !found {
		return uri
	}

	authority := rest
	if end := strings.IndexAny(rest, "/?"); end >= 0 {
		authority = rest[:end]
	}
	at := strings.LastIndex(authority, "@")
	if at < 0 {
		return uri
	}
	return scheme + "://***:***@" + rest[at+1:]
}
