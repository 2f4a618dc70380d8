package webapp

import (
	"net/http"
	"testing"
)

func TestRateLimit(t *testing.T) {
	web, _, _, cleanup := setupTestWebApp(t)
	defer cleanup()

	web.Config.Server.RateLimit = 1
	web.Config.Server.RateBurst = 2
	router := web.GetRouter()

	// httptest requests share a remote address, so the bucket is shared.
	for i := 0; i < 2; i++ {
		rec := doRequest(t, router, http.MethodGet, "/api/health", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}

	rec := doRequest(t, router, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Error.Code != "RATE_LIMITED" {
		t.Errorf("rate limit envelope wrong: %+v", env)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	_, router, _, cleanup := setupTestWebApp(t)
	defer cleanup()

	for i := 0; i < 20; i++ {
		rec := doRequest(t, router, http.MethodGet, "/api/health", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d throttled with limit disabled: %d", i, rec.Code)
		}
	}
}
