package interfaces

import (
	"context"

	"loanlink/internal/pkg/models"
)

type PaymentEventPublisherInterface interface {
	PublishPaymentConfirmed(ctx context.Context, msg models.PaymentConfirmedMessage) (string, error)
}
