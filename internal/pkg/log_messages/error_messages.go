package log_messages

const (
	ServerStartFailure         = "failed to start server: %v"
	ServerShutdown             = "Shutting down server..."
	ServerExiting              = "Server exiting"
	FailedLoadingConfiguration = "Failed to load configuration: %v"
	CleanupStarted             = "Starting cleanup of resources..."
	CleanupCompleted           = "All resources cleaned up successfully"

	// Identity
	UnauthorizedAccess         = "Unauthorized Access!"
	ErrorDecodingServiceKey    = "failed to decode identity provider service key: %w"
	ErrorInitializingFirebase  = "failed to initialize identity provider app: %w"
	ErrorCreatingAuthClient    = "failed to create identity provider auth client: %w"
	ErrorTokenVerification     = "token verification failed"
	ErrorTokenMissingEmail     = "verified token carries no email claim"
	ErrorMissingServiceKey     = "identity provider service key is not configured"
	ErrorMissingStripeKey      = "payment processor secret key is not configured"
	ErrorMissingMongoURI       = "mongo uri is not configured"
	ErrorMissingPaymentTopic   = "pubsub payment topic is not configured while pubsub is enabled"
	ErrorInvalidDocumentID     = "invalid document id"
	ErrorMissingSessionID      = "session_id query parameter is required"
	ErrorInvalidRequestPayload = "invalid request payload"

	// Checkout
	PaymentSuccessful        = "Payment successful"
	PaymentNotCompleted      = "Payment not completed"
	MissingApplicationInMeta = "No loanApplicationId in session metadata"
	ServerError              = "Server error"
	ErrorCreatingSession     = "failed to create checkout session: %w"
	ErrorRetrievingSession   = "failed to retrieve checkout session: %w"
	ErrorMarkingPaid         = "failed to mark loan application paid: %w"
	ErrorInvalidAmount       = "amount must be greater than zero"

	// Pub/Sub
	TopicDoesNotExists        = "pubsub topic does not exist: %v"
	ErrorMarshallingMessage   = "failed to marshal message: %w"
	ErrorInMessagePublishing  = "failed to publish message: %w"
	ErrorPubSubClientCreation = "error creating pubsub client: %w"

	// Store
	ErrorFetchingLoans        = "error fetching loans from mongoDB"
	ErrorFetchingApplications = "error fetching loan applications from mongoDB"
	ErrorFetchingUser         = "error fetching user from mongoDB"
)
