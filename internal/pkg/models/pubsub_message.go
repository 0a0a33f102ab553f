package models

import "time"

// PaymentConfirmedMessage is published once a loan application fee is marked paid.
type PaymentConfirmedMessage struct {
	EventType         string    `json:"eventType"`
	LoanApplicationID string    `json:"loanApplicationId"`
	StripePaymentID   string    `json:"stripePaymentId"`
	PaymentEmail      string    `json:"paymentEmail"`
	PaymentAmount     float64   `json:"paymentAmount"`
	PaidAt            time.Time `json:"paidAt"`
}

const PaymentConfirmedEvent = "LoanApplicationFeePaid"
