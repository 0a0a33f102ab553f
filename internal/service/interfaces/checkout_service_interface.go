package interfaces

import (
	"context"

	"loanlink/internal/pkg/models"
)

type CheckoutServiceInterface interface {
	CreateSession(ctx context.Context, req models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, error)
	ResolveSession(ctx context.Context, sessionID string) (*models.PaymentConfirmation, error)
}
