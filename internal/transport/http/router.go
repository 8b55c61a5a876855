// Package httptransport assembles the storefront's HTTP surface: the generic
// middleware chain, health probes, metrics and the domain routes under /api.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront/internal/i18n"
	"storefront/internal/ratelimit/models"
	"storefront/pkg/platform/middleware/metadata"
	"storefront/pkg/platform/middleware/request"
	"storefront/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by every domain handler.
type Registrar interface {
	Register(r chi.Router)
}

// RateLimiter hands out per-class limiting middleware.
type RateLimiter interface {
	RateLimit(class models.EndpointClass) func(http.Handler) http.Handler
}

type Handlers struct {
	Catalog  Registrar
	Cart     Registrar
	Checkout Registrar
	Payment  Registrar
	Account  Registrar
	Loyalty  Registrar
	Locale   Registrar
}

type Config struct {
	Logger         *slog.Logger
	Latency        request.LatencyObserver
	Sessions       func(http.Handler) http.Handler
	Locales        *i18n.Resolver
	RateLimiter    RateLimiter
	Checks         []Check
	RequestTimeout time.Duration
}

// NewRouter wires middleware and routes. Handlers left nil are skipped.
func NewRouter(cfg Config, h Handlers) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(request.Logger(cfg.Logger))
	r.Use(request.Timeout(cfg.RequestTimeout))
	r.Use(request.LatencyMiddleware(cfg.Latency))

	r.Get("/healthz", handleHealthz)
	r.Get("/readyz", readyz(cfg.Logger, cfg.Checks))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(request.ContentTypeJSON)
		if cfg.Sessions != nil {
			r.Use(cfg.Sessions)
		}
		if cfg.Locales != nil {
			r.Use(i18n.Middleware(cfg.Locales, cfg.Logger))
		}

		r.Get("/flash", handleFlash)
		register(r, h.Locale)
		register(r, h.Catalog)
		register(r, h.Checkout)
		register(r, h.Payment)
		register(r, h.Account)
		register(r, h.Loyalty)

		r.Group(func(r chi.Router) {
			if cfg.RateLimiter != nil {
				r.Use(cfg.RateLimiter.RateLimit(models.ClassCart))
			}
			register(r, h.Cart)
		})
	})
	return r
}

func register(r chi.Router, reg Registrar) {
	if reg != nil {
		reg.Register(r)
	}
}
