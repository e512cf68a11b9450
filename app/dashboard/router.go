package dashboard

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sportsphere-app/sportsphere/app/datagen"
)

// NewRouter wires the dashboard routes over one dataset. The rate limiter is
// optional; pass nil to serve unthrottled (tests do).
func NewRouter(data *datagen.Dataset, logger *slog.Logger, registry *prometheus.Registry, limiter *IPRateLimiter) chi.Router {
	h := NewHandlers(data, logger)
	metrics := NewMetrics(registry)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))
	r.Use(metrics.Middleware)
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/tables", h.ListTables)
		r.Route("/tables/{table}", func(r chi.Router) {
			r.Get("/", h.GetTable)
			r.Get("/summary", h.GetSummary)
			r.Get("/chart", h.GetChart)
		})

		// Demo write stubs: validate, acknowledge, discard.
		r.Post("/accounts", h.CreateAccount)
		r.Post("/matches", h.CreateMatch)
		r.Post("/tournaments", h.CreateTournament)
		r.Post("/tickets", h.CreateTicket)
		r.Post("/contact", h.CreateContact)
	})

	r.Get("/healthz", h.Healthz)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
