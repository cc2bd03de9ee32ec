package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

// AuthMiddleware requires the shared API key on every non-public path
func AuthMiddleware(apiKey string, trustedProxies []string, detector *AbuseDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				if detector != nil {
					detector.RecordFailedAuth(r, ip)
				}

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublic(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// AbuseDetector counts requests and failed logins per IP over a fixed window
type AbuseDetector struct {
	mu          sync.Mutex
	failedAuth  map[string]int
	requests    map[string]int
	windowStart time.Time
	window      time.Duration
	maxRequests int
	now         func() time.Time
}

// NewAbuseDetector creates a detector with the default window and limit
func NewAbuseDetector() *AbuseDetector {
	return newAbuseDetector(DetectorWindow, DetectorMaxRequests, time.Now)
}

func newAbuseDetector(window time.Duration, maxRequests int, now func() time.Time) *AbuseDetector {
	return &AbuseDetector{
		failedAuth:  make(map[string]int),
		requests:    make(map[string]int),
		windowStart: now(),
		window:      window,
		maxRequests: maxRequests,
		now:         now,
	}
}

// RecordFailedAuth counts a failed authentication and alerts past the threshold
func (d *AbuseDetector) RecordFailedAuth(r *http.Request, ip string) {
	d.mu.Lock()
	d.rollWindow()
	d.failedAuth[ip]++
	count := d.failedAuth[ip]
	d.mu.Unlock()

	if count >= DetectorFailedAuthAlert {
		logger.FromContext(r.Context()).Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// Allow counts a request and reports whether ip is still under the limit
func (d *AbuseDetector) Allow(r *http.Request, ip string) bool {
	d.mu.Lock()
	d.rollWindow()
	d.requests[ip]++
	count := d.requests[ip]
	d.mu.Unlock()

	if count <= d.maxRequests {
		return true
	}
	if count%DetectorLogEvery == 0 {
		logger.FromContext(r.Context()).Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// rollWindow clears the counters when the window has passed. Caller holds mu.
func (d *AbuseDetector) rollWindow() {
	if d.now().Sub(d.windowStart) > d.window {
		d.requests = make(map[string]int)
		d.failedAuth = make(map[string]int)
		d.windowStart = d.now()
	}
}

// RateLimitMiddleware rejects clients over the detector's request limit
func RateLimitMiddleware(trustedProxies []string, detector *AbuseDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.Allow(r, extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is only honoured
// when the direct peer is a trusted proxy, and then its last hop is used.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
