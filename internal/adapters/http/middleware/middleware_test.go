package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// TestCORS_SetsHeaders verifies the permissive cross-origin headers the
// front end depends on are present on every response.
func TestCORS_SetsHeaders(t *testing.T) {
	handler := CORS(okHandler())

	req := httptest.NewRequest("GET", "/backend/api/get_mechanics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want \"*\"", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, PUT, DELETE, OPTIONS" {
		t.Errorf("Access-Control-Allow-Methods = %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization" {
		t.Errorf("Access-Control-Allow-Headers = %q", got)
	}
}

// TestCORS_AnswersPreflight verifies OPTIONS requests short-circuit with 200.
func TestCORS_AnswersPreflight(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("OPTIONS", "/backend/api/book_appointment", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if called {
		t.Error("preflight should not reach the inner handler")
	}
}

// TestSecurityHeaders verifies the OWASP headers are set.
func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	for _, h := range []string{"Content-Security-Policy", "X-Frame-Options", "X-Content-Type-Options", "Referrer-Policy"} {
		if rr.Header().Get(h) == "" {
			t.Errorf("header %s not set", h)
		}
	}
}

// TestRateLimiter_AllowsWithinLimit verifies requests under the limit pass.
func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	for i := 0; i < 5; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

// TestRateLimiter_BlocksOverLimit verifies the limit is enforced per IP.
func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		rl.Allow("10.0.0.2")
	}
	if rl.Allow("10.0.0.2") {
		t.Error("4th request should be blocked")
	}
	// A different IP has its own budget
	if !rl.Allow("10.0.0.3") {
		t.Error("different IP should be allowed")
	}
}

// TestRateLimit_Returns429 verifies exhausted clients get 429.
func TestRateLimit_Returns429(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	handler := RateLimit(rl)(okHandler())

	req := httptest.NewRequest("GET", "/backend/api/get_mechanics", nil)
	req.RemoteAddr = "10.0.0.4:1234"

	rr1 := httptest.NewRecorder()
	handler.ServeHTTP(rr1, req)
	if rr1.Code != http.StatusOK {
		t.Errorf("first request status = %d, want 200", rr1.Code)
	}

	rr2 := httptest.NewRecorder()
	handler.ServeHTTP(rr2, req)
	if rr2.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rr2.Code)
	}
}

// TestCSRF_ExemptsAPI verifies form posts to the booking API bypass CSRF
// protection while other posts require a token.
func TestCSRF_ExemptsAPI(t *testing.T) {
	handler := CSRF([]byte("0123456789abcdef0123456789abcdef"))(okHandler())

	apiReq := httptest.NewRequest("POST", "/backend/api/book_appointment", nil)
	apiRR := httptest.NewRecorder()
	handler.ServeHTTP(apiRR, apiReq)
	if apiRR.Code != http.StatusOK {
		t.Errorf("API post status = %d, want 200 (exempt)", apiRR.Code)
	}

	formReq := httptest.NewRequest("POST", "/contact", nil)
	formRR := httptest.NewRecorder()
	handler.ServeHTTP(formRR, formReq)
	if formRR.Code != http.StatusForbidden {
		t.Errorf("form post without token status = %d, want 403", formRR.Code)
	}
}

// TestChain_AppliesInOrder verifies Chain wraps outer-to-inner.
func TestChain_AppliesInOrder(t *testing.T) {
	var order []string
	mk := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(okHandler(), mk("inner"), mk("outer"))
	req := httptest.NewRequest("GET", "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("order = %v, want [outer inner]", order)
	}
}
