package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConnector owns the client lifecycle so connection setup can be tested without a server.
type MongoConnector interface {
	Connect(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error)
	Ping(ctx context.Context, client *mongo.Client) error
	Disconnect(ctx context.Context, client *mongo.Client) error
}

type DefaultMongoConnector struct{}

func (d *DefaultMongoConnector) Connect(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	return mongo.Connect(ctx, opts)
}

// Ping uses the primary read preference so a reachable secondary alone does not pass.
func (d *DefaultMongoConnector) Ping(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}

func (d *DefaultMongoConnector) Disconnect(ctx context.Context, client *mongo.Client) error {
	return client.Disconnect(ctx)
}
