package identity

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"loanlink/internal/pkg/log_messages"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// IDTokenVerifier is the part of *auth.Client used to check bearer tokens.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type FirebaseVerifier struct {
	client IDTokenVerifier
}

// NewFirebaseVerifier builds an auth client from a base64 encoded service account JSON.
func NewFirebaseVerifier(ctx context.Context, serviceKey string) (*FirebaseVerifier, error) {
	credentials, err := base64.StdEncoding.DecodeString(strings.TrimSpace(serviceKey))
	if err != nil {
		return nil, fmt.Errorf(log_messages.ErrorDecodingServiceKey, err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf(log_messages.ErrorInitializingFirebase, err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf(log_messages.ErrorCreatingAuthClient, err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func NewFirebaseVerifierWithClient(client IDTokenVerifier) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// VerifyToken returns the email claim of a valid ID token.
func (v *FirebaseVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return "", errors.New(log_messages.ErrorTokenMissingEmail)
	}
	return email, nil
}
