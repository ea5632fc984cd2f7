package contextkeys

type contextKey string

const (
	UserIDKey    contextKey = "UserID"
	ClaimsKey    contextKey = "Claims"
	LoggerKey    contextKey = "Logger"
	RequestIDKey contextKey = "RequestID"
)
