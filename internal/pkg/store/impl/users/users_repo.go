package users

import (
	"context"
	"errors"
	"time"

	"loanlink/internal/pkg/common"
	"loanlink/internal/pkg/consts"
	mongodb "loanlink/internal/pkg/db/mongo"
	"loanlink/internal/pkg/logger"
	"loanlink/internal/pkg/store/models"
	"loanlink/internal/pkg/store/repository"
	"loanlink/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type UserRepository struct {
	repo interfaces.UserStoreInterface
	now  func() time.Time
}

func NewUserRepository(client *mongodb.MongoClient) *UserRepository {
	collection := client.Database.Collection(consts.UsersCollection)
	repo := repository.NewMongoRepository[models.User](collection)
	return &UserRepository{repo: repo, now: time.Now}
}

func NewUserRepositoryWithInterface(repo interfaces.UserStoreInterface) *UserRepository {
	return &UserRepository{repo: repo, now: time.Now}
}

// UpsertOnLogin records a login. The first call inserts the user with its role,
// created_at and any extra members; later calls only refresh last_loggedIn.
func (ur *UserRepository) UpsertOnLogin(ctx context.Context, user *models.User) (*mongo.UpdateResult, error) {
	now := common.ISOTimestamp(ur.now())

	role := user.Role
	if role == "" {
		role = consts.DefaultUserRole
	}

	onInsert := bson.M{
		"role":       role,
		"status":     consts.DefaultUserStatus,
		"created_at": now,
	}
	if user.Name != "" {
		onInsert["name"] = user.Name
	}
	if user.Image != "" {
		onInsert["image"] = user.Image
	}
	for key, value := range user.Extra {
		if _, taken := onInsert[key]; !taken && key != "email" && key != "last_loggedIn" {
			onInsert[key] = value
		}
	}

	filter := bson.M{"email": user.Email}
	update := bson.M{
		"$set":         bson.M{"last_loggedIn": now},
		"$setOnInsert": onInsert,
	}

	result, err := ur.repo.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		logger.CtxError(ctx, "Error upserting user", err, zap.String("email", user.Email))
		return nil, err
	}

	if result.UpsertedCount > 0 {
		logger.CtxInfo(ctx, "User inserted", zap.String("email", user.Email), zap.Any("upsertedId", result.UpsertedID))
	} else {
		logger.CtxDebug(ctx, "User login refreshed", zap.String("email", user.Email))
	}
	return result, nil
}

func (ur *UserRepository) GetRoleByEmail(ctx context.Context, email string) (*string, error) {
	opt := options.FindOne().SetProjection(bson.M{"role": 1})
	user, err := ur.repo.FindOne(ctx, bson.M{"email": email}, opt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.CtxError(ctx, "Error finding role by email", err, zap.String("email", email))
		return nil, err
	}

	if user.Role == "" {
		return nil, nil
	}
	return &user.Role, nil
}
