package applications

import (
	"context"
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
	"go.uber.org/zap"
)

type ApplicationRepository struct {
	repo interfaces.ApplicationStoreInterface
}

func NewApplicationRepository(client *mongodb.MongoClient) *ApplicationRepository {
	collection := client.Database.Collection(consts.ApplicationsCollection)
	repo := repository.NewMongoRepository[models.LoanApplication](collection)
	return &ApplicationRepository{repo: repo}
}

func NewApplicationRepositoryWithInterface(repo interfaces.ApplicationStoreInterface) *ApplicationRepository {
	return &ApplicationRepository{repo: repo}
}

// CreateApplication inserts a new application as Pending and Unpaid.
func (ar *ApplicationRepository) CreateApplication(ctx context.Context,
	application *models.LoanApplication) (*mongo.InsertOneResult, error) {
	if application.Status == "" {
		application.Status = consts.ApplicationStatusPending
	}
	if application.ApplicationFeeStatus == "" {
		application.ApplicationFeeStatus = consts.ApplicationFeeUnpaid
	}
	if application.CreatedAt.IsZero() {
		application.CreatedAt = time.Now().UTC()
	}

	result, err := ar.repo.Create(ctx, application)
	if err != nil {
		logger.CtxError(ctx, "Error inserting loan application", err,
			zap.String("userEmail", application.UserEmail),
			zap.String("loanId", application.LoanID),
		)
		return nil, err
	}

	logger.CtxInfo(ctx, "Loan application created", zap.Any("insertedId", result.InsertedID))
	return result, nil
}

func (ar *ApplicationRepository) GetApplicationsByEmail(ctx context.Context, email string) ([]models.LoanApplication, error) {
	applications, err := ar.repo.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		logger.CtxError(ctx, "Error fetching loan applications", err, zap.String("userEmail", email))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched loan applications", zap.String("userEmail", email), zap.Int("count", len(applications)))
	return applications, nil
}

// DeleteApplication removes at most one application. An unknown id deletes nothing.
func (ar *ApplicationRepository) DeleteApplication(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := ar.repo.Delete(ctx, bson.M{"_id": id})
	if err != nil {
		logger.CtxError(ctx, "Error deleting loan application", err, zap.String("_id", id.Hex()))
		return nil, err
	}

	logger.CtxInfo(ctx, "Loan application delete processed",
		zap.String("_id", id.Hex()),
		zap.Int64("deletedCount", result.DeletedCount),
	)
	return result, nil
}

// MarkApplicationPaid attaches the payment fields once. Applications already marked
// Paid are left untouched and yield MatchedCount 0.
func (ar *ApplicationRepository) MarkApplicationPaid(ctx context.Context, id primitive.ObjectID,
	payment models.PaymentDetails) (*mongo.UpdateResult, error) {
	filter := bson.M{
		"_id":                  id,
		"applicationFeeStatus": bson.M{"$ne": consts.ApplicationFeePaid},
	}
	update := bson.M{
		"$set": bson.M{
			"applicationFeeStatus": consts.ApplicationFeePaid,
			"stripePaymentId":      payment.StripePaymentID,
			"paymentEmail":         payment.PaymentEmail,
			"paymentAmount":        payment.PaymentAmount,
			"paidAt":               payment.PaidAt,
		},
	}

	result, err := ar.repo.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.CtxError(ctx, "Error marking loan application paid", err, zap.String("_id", id.Hex()))
		return nil, err
	}

	if result.MatchedCount == 0 {
		logger.CtxWarn(ctx, "Loan application already paid or missing", zap.String("_id", id.Hex()))
	} else {
		logger.CtxInfo(ctx, "Loan application marked paid",
			zap.String("_id", id.Hex()),
			zap.String("stripePaymentId", payment.StripePaymentID),
		)
	}
	return result, nil
}
