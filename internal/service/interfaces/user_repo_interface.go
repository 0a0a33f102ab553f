package interfaces

import (
	"context"

	"loanlink/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepositoryInterface interface {
	UpsertOnLogin(ctx context.Context, user *models.User) (*mongo.UpdateResult, error)
	GetRoleByEmail(ctx context.Context, email string) (*string, error)
}

type UserStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.User, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}
