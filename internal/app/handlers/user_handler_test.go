package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"loanlink/internal/pkg/consts"
	storemodels "loanlink/internal/pkg/store/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertOnLogin(ctx context.Context, user *storemodels.User) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, user)
	if r, ok := args.Get(0).(*mongo.UpdateResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetRoleByEmail(ctx context.Context, email string) (*string, error) {
	args := m.Called(ctx, email)
	if r, ok := args.Get(0).(*string); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// withTokenEmail stands in for the token middleware.
func withTokenEmail(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if email != "" {
			c.Set(consts.TokenEmailKey, email)
		}
		c.Next()
	}
}

func TestUpsertUser(t *testing.T) {
	t.Run("new user", func(t *testing.T) {
		repo := new(MockUserRepository)
		upserted := primitive.NewObjectID()
		repo.On("UpsertOnLogin", mock.Anything, mock.MatchedBy(func(u *storemodels.User) bool {
			return u.Email == "a@b.com" && u.Name == "Ann" && u.Role == ""
		})).Return(&mongo.UpdateResult{UpsertedCount: 1, UpsertedID: upserted}, nil).Once()

		router := gin.New()
		router.POST("/user", NewUserHandler(repo).UpsertUser)
		w := performRequest(router, http.MethodPost, "/user", `{"email":"a@b.com","name":"Ann"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"acknowledged":true,"matchedCount":0,"modifiedCount":0,"upsertedCount":1,"upsertedId":"`+
			upserted.Hex()+`"}`, w.Body.String())
		repo.AssertExpectations(t)
	})

	t.Run("returning user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UpsertOnLogin", mock.Anything, mock.Anything).
			Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()

		router := gin.New()
		router.POST("/user", NewUserHandler(repo).UpsertUser)
		w := performRequest(router, http.MethodPost, "/user", `{"email":"a@b.com","role":"manager"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedCount":0,"upsertedId":null}`,
			w.Body.String())
	})

	t.Run("undeclared members reach the store", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UpsertOnLogin", mock.Anything, mock.MatchedBy(func(u *storemodels.User) bool {
			return assert.ObjectsAreEqual(bson.M{"phone": "+8801700000000"}, u.Extra)
		})).Return(&mongo.UpdateResult{UpsertedCount: 1, UpsertedID: primitive.NewObjectID()}, nil).Once()

		router := gin.New()
		router.POST("/user", NewUserHandler(repo).UpsertUser)
		w := performRequest(router, http.MethodPost, "/user",
			`{"email":"a@b.com","phone":"+8801700000000","created_at":"yesterday","last_loggedIn":"never"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("invalid email", func(t *testing.T) {
		repo := new(MockUserRepository)

		router := gin.New()
		router.POST("/user", NewUserHandler(repo).UpsertUser)
		w := performRequest(router, http.MethodPost, "/user", `{"email":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"email"`)
		repo.AssertNotCalled(t, "UpsertOnLogin", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UpsertOnLogin", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		router := gin.New()
		router.POST("/user", NewUserHandler(repo).UpsertUser)
		w := performRequest(router, http.MethodPost, "/user", `{"email":"a@b.com"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetRole(t *testing.T) {
	newRouter := func(repo *MockUserRepository, email string) *gin.Engine {
		router := gin.New()
		router.GET("/user/role", withTokenEmail(email), NewUserHandler(repo).GetRole)
		return router
	}

	t.Run("known role", func(t *testing.T) {
		repo := new(MockUserRepository)
		role := "admin"
		repo.On("GetRoleByEmail", mock.Anything, "admin@b.com").Return(&role, nil).Once()

		w := performRequest(newRouter(repo, "admin@b.com"), http.MethodGet, "/user/role", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"role":"admin"}`, w.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetRoleByEmail", mock.Anything, "ghost@b.com").Return(nil, nil).Once()

		w := performRequest(newRouter(repo, "ghost@b.com"), http.MethodGet, "/user/role", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"role":null}`, w.Body.String())
	})

	t.Run("no verified email", func(t *testing.T) {
		repo := new(MockUserRepository)

		w := performRequest(newRouter(repo, ""), http.MethodGet, "/user/role", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		repo.AssertNotCalled(t, "GetRoleByEmail", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetRoleByEmail", mock.Anything, "a@b.com").Return(nil, errors.New("boom")).Once()

		w := performRequest(newRouter(repo, "a@b.com"), http.MethodGet, "/user/role", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
