package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brandscope/api/pkg/health"
	"github.com/brandscope/api/pkg/middleware"
)

// RouterConfig collects the dependencies the router wires together.
type RouterConfig struct {
	BrandHandler      *BrandHandler
	CompetitorHandler *CompetitorHandler
	Health            *health.Handler
	TokenValidator    middleware.TokenValidator
	Logger            *slog.Logger
	ServiceName       string
	CORSOrigins       []string
}

// NewRouter assembles the HTTP routing tree with the full middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(CORS(cfg.CORSOrigins))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.TokenValidator))
		r.Use(ContentTypeJSON)

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", cfg.BrandHandler.Get)
			r.Post("/", cfg.BrandHandler.Create)
		})

		r.Route("/competitors", func(r chi.Router) {
			r.Get("/", cfg.CompetitorHandler.List)
			r.Post("/", cfg.CompetitorHandler.Add)
			r.Delete("/{id}", cfg.CompetitorHandler.Delete)
		})
	})

	return r
}
