package interfaces

import (
	"context"

	"loanlink/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LoanRepositoryInterface interface {
	CreateLoan(ctx context.Context, loan *models.Loan) (*mongo.InsertOneResult, error)
	GetAllLoans(ctx context.Context) ([]models.Loan, error)
	GetHomeLoans(ctx context.Context, limit int64) ([]models.Loan, error)
	GetLoanByID(ctx context.Context, id primitive.ObjectID) (*models.Loan, error)
}

type LoanStoreInterface interface {
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.Loan, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Loan, error)
}
