package models

type Borrower struct {
	Email string `json:"email" binding:"omitempty,email"`
}

type CheckoutSessionRequest struct {
	LoanTitle         string   `json:"loanTitle" binding:"required"`
	Amount            float64  `json:"amount" binding:"gt=0"`
	Image             string   `json:"image"`
	Quantity          int64    `json:"quantity" binding:"gte=0"`
	Borrower          Borrower `json:"borrower"`
	LoanApplicationID string   `json:"loanApplicationId" binding:"omitempty,objectid"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// PaymentConfirmation is the body returned by the payment-success endpoint.
type PaymentConfirmation struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	LoanApplicationID string `json:"loanApplicationId,omitempty"`
	StripePaymentID   string `json:"stripePaymentId,omitempty"`
	Error             string `json:"error,omitempty"`
}
