package payments

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// checkoutSessions is satisfied by *session.Client from stripe-go.
type checkoutSessions interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeProcessor struct {
	sessions checkoutSessions
}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	return NewStripeProcessorWithBackends(secretKey, nil)
}

// NewStripeProcessorWithBackends uses the given backends, or the default Stripe API when nil.
func NewStripeProcessorWithBackends(secretKey string, backends *stripe.Backends) *StripeProcessor {
	sc := &client.API{}
	sc.Init(secretKey, backends)
	return &StripeProcessor{sessions: sc.CheckoutSessions}
}

func (p *StripeProcessor) CreateCheckoutSession(ctx context.Context,
	params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx
	return p.sessions.New(params)
}

func (p *StripeProcessor) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	return p.sessions.Get(sessionID, params)
}
