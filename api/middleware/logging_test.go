package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractIP(t *testing.T) {
	testCases := []struct {
		name      string
		forwarded string
		realIP    string
		remote    string
		want      string
	}{
		{"remote addr only", "", "", "10.0.0.1:55555", "10.0.0.1"},
		{"remote addr without port", "", "", "10.0.0.1", "10.0.0.1"},
		{"x-real-ip wins over remote", "", "203.0.113.7", "10.0.0.1:55555", "203.0.113.7"},
		{"single forwarded entry", "203.0.113.7", "", "10.0.0.1:55555", "203.0.113.7"},
		{"forwarded chain keeps first hop", "203.0.113.7, 70.41.3.18, 150.172.238.178", "", "10.0.0.1:55555", "203.0.113.7"},
		{"forwarded wins over x-real-ip", "203.0.113.7", "198.51.100.2", "10.0.0.1:55555", "203.0.113.7"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/articles", nil)
			r.RemoteAddr = tc.remote
			if tc.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				r.Header.Set("X-Real-IP", tc.realIP)
			}

			if got := extractIP(r); got != tc.want {
				t.Errorf("extractIP() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRateLimitMiddleware_ForwardedChainSharesOneBucket(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := RateLimitMiddleware(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(chain string) int {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/articles", nil)
		req.RemoteAddr = "10.0.0.1:55555"
		req.Header.Set("X-Forwarded-For", chain)
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	// Same client arriving through different proxy chains is one bucket.
	if code := do("203.0.113.7, 70.41.3.18"); code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", code)
	}
	if code := do("203.0.113.7, 198.51.100.9, 70.41.3.18"); code != http.StatusTooManyRequests {
		t.Errorf("second request = %d, want 429 (first hop identifies the client)", code)
	}
}
