package interfaces

import (
	"context"

	"github.com/stripe/stripe-go/v76"
)

// PaymentProcessorInterface covers the hosted checkout calls the orchestrator makes.
type PaymentProcessorInterface interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)
}
