package consts

// gin context keys
const (
	TokenEmailKey = "tokenEmail"
	RequestIDKey  = "requestId"
)

const RequestIDHeader = "X-Request-Id"
