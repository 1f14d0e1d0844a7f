package middleware

import "context"

type contextKey struct{ name string }

var (
	userIDKey    = contextKey{"user_id"}
	tokenIDKey   = contextKey{"token_id"}
	requestIDKey = contextKey{"request_id"}
)

// WithIdentity returns a context carrying the authenticated user id and the id of the token it was read from.
// Services read the user back through GetUserID.
func WithIdentity(ctx context.Context, userID int64, tokenID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, tokenIDKey, tokenID)
	return ctx
}

// GetUserID returns the user id from context and true if set; otherwise 0, false.
func GetUserID(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(userIDKey).(int64)
	return v, ok
}

// GetTokenID returns the token id from context and true if set; otherwise "", false.
func GetTokenID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(tokenIDKey).(string)
	return v, ok
}

// WithRequestID returns a context carrying the request id assigned by RequestLogger.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the request id from context, or "" when none was assigned.
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}
