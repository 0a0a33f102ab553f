package interfaces

import (
	"context"

	"loanlink/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ApplicationRepositoryInterface interface {
	CreateApplication(ctx context.Context, application *models.LoanApplication) (*mongo.InsertOneResult, error)
	GetApplicationsByEmail(ctx context.Context, email string) ([]models.LoanApplication, error)
	DeleteApplication(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	MarkApplicationPaid(ctx context.Context, id primitive.ObjectID, payment models.PaymentDetails) (*mongo.UpdateResult, error)
}

type ApplicationStoreInterface interface {
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.LoanApplication, error)
	Delete(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}
