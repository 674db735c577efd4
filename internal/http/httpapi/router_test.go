package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"bloodconnect/internal/http/handlers"
	"bloodconnect/internal/metrics"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	app := &handlers.App{
		Logger:        zerolog.Nop(),
		Metrics:       metrics.Nop{},
		SessionSecret: "secret",
		SessionTTL:    time.Hour,
	}
	registry := prometheus.NewRegistry()
	return NewRouter(app, Options{
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		DefaultLocale:      "en",
		MetricsGatherer:    registry,
	})
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/users", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow-origin = %q", got)
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/healthz", nil))

	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID header not set")
	}
}
