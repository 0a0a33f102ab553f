package identity

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIDTokenVerifier struct {
	mock.Mock
}

func (m *mockIDTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	args := m.Called(ctx, idToken)
	if tok, ok := args.Get(0).(*auth.Token); ok {
		return tok, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token yields email", func(t *testing.T) {
		client := new(mockIDTokenVerifier)
		client.On("VerifyIDToken", ctx, "good-token").
			Return(&auth.Token{UID: "uid-1", Claims: map[string]interface{}{"email": "b@example.com"}}, nil).Once()

		email, err := NewFirebaseVerifierWithClient(client).VerifyToken(ctx, "good-token")

		require.NoError(t, err)
		assert.Equal(t, "b@example.com", email)
		client.AssertExpectations(t)
	})

	t.Run("verification failure", func(t *testing.T) {
		client := new(mockIDTokenVerifier)
		client.On("VerifyIDToken", ctx, "expired").Return(nil, errors.New("ID token has expired")).Once()

		email, err := NewFirebaseVerifierWithClient(client).VerifyToken(ctx, "expired")

		assert.EqualError(t, err, "ID token has expired")
		assert.Empty(t, email)
	})

	t.Run("token without email claim", func(t *testing.T) {
		client := new(mockIDTokenVerifier)
		client.On("VerifyIDToken", ctx, "anon").
			Return(&auth.Token{UID: "uid-2", Claims: map[string]interface{}{}}, nil).Once()

		email, err := NewFirebaseVerifierWithClient(client).VerifyToken(ctx, "anon")

		assert.Error(t, err)
		assert.Empty(t, email)
	})
}

func TestNewFirebaseVerifier_InvalidKey(t *testing.T) {
	v, err := NewFirebaseVerifier(context.Background(), "%%%not-base64%%%")
	assert.Error(t, err)
	assert.Nil(t, v)
}
