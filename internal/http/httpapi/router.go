package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"bloodconnect/internal/http/handlers"
	"bloodconnect/internal/metrics"
	"bloodconnect/internal/middleware"
)

// Options carries the router's cross-cutting dependencies.
type Options struct {
	CORSAllowedOrigins []string
	DefaultLocale      string
	CountryLookup      middleware.CountryLookup
	RateLimiter        *middleware.RateLimiter
	MetricsGatherer    prometheus.Gatherer
	StatusRecorder     middleware.StatusRecorder
}

// NewRouter wires every route and the shared middleware chain.
func NewRouter(app *handlers.App, opts Options) stdhttp.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger, opts.StatusRecorder),
		middleware.CORS(opts.CORSAllowedOrigins),
		middleware.Locale(opts.DefaultLocale, opts.CountryLookup),
		middleware.Session(app.SessionSecret),
	)
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware)
	}

	r.Get("/healthz", app.Health)
	if opts.MetricsGatherer != nil {
		r.Method(stdhttp.MethodGet, "/metrics", metrics.Handler(opts.MetricsGatherer))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", app.UsersList)
			r.Post("/", app.UsersCreate)
			r.Get("/{id}", app.UsersGet)
			r.Put("/{id}", app.UsersUpdate)
			r.Get("/{id}/achievements", app.UsersAchievements)
		})

		r.Route("/bloodRequests", func(r chi.Router) {
			r.Get("/", app.RequestsList)
			r.Post("/", app.RequestsCreate)
			r.Put("/{id}", app.RequestsUpdate)
		})

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", app.DonationsList)
			r.Post("/", app.DonationsCreate)
			r.Get("/user/{userId}", app.DonationsByUser)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", app.SessionsCreate)
			r.Delete("/", app.SessionsDelete)
		})

		r.Get("/stats", app.StatsSummary)
	})

	return r
}
