package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"projectboard/internal/security"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// identityProbe records what the handler saw in the request context.
type identityProbe struct {
	userID    int64
	hasUser   bool
	tokenID   string
	requestID string
}

func probeRouter(mw ...gin.HandlerFunc) (*gin.Engine, *identityProbe) {
	probe := &identityProbe{}
	r := gin.New()
	r.Use(mw...)
	r.GET("/probe", func(c *gin.Context) {
		ctx := c.Request.Context()
		probe.userID, probe.hasUser = GetUserID(ctx)
		probe.tokenID, _ = GetTokenID(ctx)
		probe.requestID = GetRequestID(ctx)
		c.Status(http.StatusNoContent)
	})
	return r, probe
}

func TestAuthenticate(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, id, err := tokens.Issue(42, "Ana")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name     string
		prepare  func(r *http.Request)
		wantUser bool
	}{
		{"no credentials", func(*http.Request) {}, false},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, true},
		{"lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer "+token) }, true},
		{"session cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: token}) }, true},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer not-a-jwt") }, false},
		{"basic scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic "+token) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, probe := probeRouter(Authenticate(tokens))
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusNoContent {
				t.Fatalf("status = %d, want 204", w.Code)
			}
			if probe.hasUser != tt.wantUser {
				t.Fatalf("identity set = %v, want %v", probe.hasUser, tt.wantUser)
			}
			if tt.wantUser && (probe.userID != 42 || probe.tokenID != id.TokenID) {
				t.Errorf("identity = (%d, %q), want (42, %q)", probe.userID, probe.tokenID, id.TokenID)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r, probe := probeRouter(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	got := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("generated request id %q is not a uuid", got)
	}
	if probe.requestID != got {
		t.Errorf("context request id = %q, header = %q", probe.requestID, got)
	}

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != incoming {
		t.Errorf("incoming uuid not reused: got %q", w.Header().Get(RequestIDHeader))
	}

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(RequestIDHeader, "injected\nvalue")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) == "injected\nvalue" {
		t.Error("malformed request id must be replaced")
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r, _ := probeRouter(RequestID(), RequestLogger(logger), Tracing())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	out := buf.String()
	for _, want := range []string{"method=GET", "path=/probe", "status=204", "latency=", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}

func TestExtractBearer(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"Bearer":        "",
		"Bearer abc":    "abc",
		"BEARER  abc  ": "abc",
		"Token abc":     "",
	}
	for in, want := range tests {
		if got := extractBearer(in); got != want {
			t.Errorf("extractBearer(%q) = %q, want %q", in, got, want)
		}
	}
}
