package loans

import (
	"context"
	"errors"
	"time"

	"loanlink/internal/pkg/consts"
	mongodb "loanlink/internal/pkg/db/mongo"
	"loanlink/internal/pkg/logger"
	"loanlink/internal/pkg/store/models"
	"loanlink/internal/pkg/store/repository"
	"loanlink/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type LoanRepository struct {
	repo interfaces.LoanStoreInterface
}

func NewLoanRepository(client *mongodb.MongoClient) *LoanRepository {
	collection := client.Database.Collection(consts.LoansCollection)
	repo := repository.NewMongoRepository[models.Loan](collection)
	return &LoanRepository{repo: repo}
}

func NewLoanRepositoryWithInterface(repo interfaces.LoanStoreInterface) *LoanRepository {
	return &LoanRepository{repo: repo}
}

func (lr *LoanRepository) CreateLoan(ctx context.Context, loan *models.Loan) (*mongo.InsertOneResult, error) {
	if loan.CreatedAt.IsZero() {
		loan.CreatedAt = time.Now().UTC()
	}

	result, err := lr.repo.Create(ctx, loan)
	if err != nil {
		logger.CtxError(ctx, "Error inserting loan", err, zap.String("title", loan.Title))
		return nil, err
	}

	logger.CtxInfo(ctx, "Loan created", zap.Any("insertedId", result.InsertedID))
	return result, nil
}

func (lr *LoanRepository) GetAllLoans(ctx context.Context) ([]models.Loan, error) {
	loans, err := lr.repo.Find(ctx, bson.M{})
	if err != nil {
		logger.CtxError(ctx, "Error fetching all loans", err)
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched all loans", zap.Int("count", len(loans)))
	return loans, nil
}

// GetHomeLoans returns loans flagged for the home page in store order.
// A non-positive limit returns all of them.
func (lr *LoanRepository) GetHomeLoans(ctx context.Context, limit int64) ([]models.Loan, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	loans, err := lr.repo.Find(ctx, bson.M{"showOnHome": true}, opts)
	if err != nil {
		logger.CtxError(ctx, "Error fetching home loans", err, zap.Int64("limit", limit))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched home loans", zap.Int("count", len(loans)))
	return loans, nil
}

// GetLoanByID returns nil without error when no loan has the id.
func (lr *LoanRepository) GetLoanByID(ctx context.Context, id primitive.ObjectID) (*models.Loan, error) {
	filter := bson.M{"_id": id}
	loan, err := lr.repo.FindOne(ctx, filter, options.FindOne())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No loan found for id", zap.String("_id", id.Hex()))
			return nil, nil
		}
		logger.CtxError(ctx, "Error finding loan by id", err, zap.String("_id", id.Hex()))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched loan by id", zap.String("_id", id.Hex()))
	return &loan, nil
}
