package consts

const (
	MetadataLoanApplicationID = "loanApplicationId"
	MetadataBorrower          = "borrower"

	// Stripe replaces the placeholder with the session id on redirect.
	CheckoutSessionPlaceholder = "{CHECKOUT_SESSION_ID}"
	PaymentSuccessPath         = "/payment-success"
	PaymentCancelPath          = "/loans"

	DefaultCurrency = "usd"
)
