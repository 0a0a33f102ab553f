package interfaces

import "context"

// TokenVerifier resolves a bearer token to the email it was issued for.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}
