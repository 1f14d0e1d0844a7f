package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"projectboard/internal/security"
)

const (
	bearerPrefix = "bearer "

	// SessionCookie carries the access token for browser clients.
	SessionCookie = "session"
	// RequestIDHeader is echoed on every response.
	RequestIDHeader = "X-Request-ID"

	tracerName = "projectboard/http"
)

// TokenValidator validates access tokens.
type TokenValidator interface {
	Validate(token string) (security.Identity, error)
}

// RequestID assigns a request id, reusing a well-formed incoming X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// RequestLogger logs one line per request after it completes.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		ctx := c.Request.Context()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"request_id", GetRequestID(ctx),
		}
		if userID, ok := GetUserID(ctx); ok {
			attrs = append(attrs, "user_id", userID)
		}
		logger.Log(ctx, level, "http request", attrs...)
	}
}

// Tracing opens a server span per request on the global TracerProvider.
func Tracing() gin.HandlerFunc {
	tracer := otel.Tracer(tracerName)
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", c.Request.Method),
				attribute.String("http.route", route),
			),
		)
		defer span.End()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

// Authenticate reads the access token from the Authorization header or the session cookie and, when it
// validates, stores the identity in the request context. Requests without a valid token pass through
// unauthenticated; routes that need a user reject them later.
func Authenticate(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(SessionCookie)
		}
		if token == "" || tokens == nil {
			c.Next()
			return
		}
		id, err := tokens.Validate(token)
		if err != nil {
			c.Next()
			return
		}
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id.UserID, id.TokenID))
		c.Next()
	}
}

// extractBearer returns the token of a "Bearer <token>" header value, or "".
func extractBearer(v string) string {
	v = strings.TrimSpace(v)
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
