package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"loanlink/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func newAuthRouter(verifier *mockVerifier, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/user/role", VerifyToken(verifier), func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"email": TokenEmailFromContext(c)})
	})
	return router
}

func TestVerifyToken(t *testing.T) {
	t.Run("valid token passes email downstream", func(t *testing.T) {
		verifier := new(mockVerifier)
		verifier.On("VerifyToken", mock.Anything, "good-token").Return("b@example.com", nil).Once()
		reached := false

		req := httptest.NewRequest(http.MethodGet, "/user/role", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		newAuthRouter(verifier, &reached).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, reached)
		assert.JSONEq(t, `{"email":"b@example.com"}`, w.Body.String())
		verifier.AssertExpectations(t)
	})

	missing := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"scheme only", "Bearer"},
		{"empty token", "Bearer "},
	}
	for _, tt := range missing {
		t.Run(tt.name, func(t *testing.T) {
			verifier := new(mockVerifier)
			reached := false

			req := httptest.NewRequest(http.MethodGet, "/user/role", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newAuthRouter(verifier, &reached).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, reached)
			assert.JSONEq(t, `{"message":"Unauthorized Access!"}`, w.Body.String())
			verifier.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
		})
	}

	t.Run("rejected token carries diagnostic", func(t *testing.T) {
		verifier := new(mockVerifier)
		verifier.On("VerifyToken", mock.Anything, "expired").Return("", errors.New("ID token has expired")).Once()
		reached := false

		req := httptest.NewRequest(http.MethodGet, "/user/role", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		newAuthRouter(verifier, &reached).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Unauthorized Access!", body["message"])
		assert.Equal(t, "ID token has expired", body["err"])
	})
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("  Bearer abc  "))
	assert.Equal(t, "", bearerToken("abc"))
	assert.Equal(t, "", bearerToken(""))
}

func TestTokenEmailFromContext(t *testing.T) {
	assert.Equal(t, "", TokenEmailFromContext(nil))

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", TokenEmailFromContext(c))
}

func TestAbortUnauthorized(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	abortUnauthorized(c, apperrors.NewUnauthorized("Unauthorized Access!", nil))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized Access!"}`, w.Body.String())
}
