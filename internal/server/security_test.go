package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	h := AuthMiddleware(apiKey, nil, NewAbuseDetector())(okHandler())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"valid key", apiKey, "/api/v1/pick", http.StatusOK},
		{"wrong key", "wrong-key", "/api/v1/pick", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/pick", http.StatusUnauthorized},
		{"healthz is public", "", "/healthz", http.StatusOK},
		{"readyz is public", "", "/readyz", http.StatusOK},
		{"metrics is public", "", "/metrics", http.StatusOK},
		{"swagger is public", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAbuseDetector_FailedAuthCounted(t *testing.T) {
	d := NewAbuseDetector()
	h := AuthMiddleware("k", nil, d)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/market", nil)
		req.RemoteAddr = "10.1.1.1:999"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Equal(t, 3, d.failedAuth["10.1.1.1"])
}

func TestRateLimitMiddleware(t *testing.T) {
	// ARRANGE
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := newAbuseDetector(time.Minute, 3, func() time.Time { return now })
	h := RateLimitMiddleware(nil, d)(okHandler())

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/market", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	// ACT / ASSERT
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, send("192.168.1.100"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("192.168.1.100"))
	assert.Equal(t, http.StatusOK, send("192.168.1.101"), "limits are per IP")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, send("192.168.1.100"), "window rolls over")
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct", "1.2.3.4:5678", "", nil, "1.2.3.4"},
		{"untrusted proxy header ignored", "1.2.3.4:5678", "9.9.9.9", nil, "1.2.3.4"},
		{"trusted proxy uses last hop", "10.0.0.1:80", "7.7.7.7, 8.8.8.8", []string{"10.0.0.1"}, "8.8.8.8"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote", "weird", "", nil, "weird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, HeaderValueDeny, rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get("Referrer-Policy"))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	h := RequestSizeLimitMiddleware(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tooLarge *http.MaxBytesError
		if _, err := io.ReadAll(r.Body); errors.As(err, &tooLarge) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
