package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/vaultpass/passgen/internal/metrics"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/service"
)

// RouterConfig carries what the HTTP routes depend on.
type RouterConfig struct {
	Service        *service.GeneratorService
	Metrics        *metrics.Metrics
	JWTSecret      string // empty disables bearer auth
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires the API routes and middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	genHandler := NewGeneratorHandler(cfg.Service)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger)
	if cfg.Metrics != nil {
		r.Use(middleware.Instrument(cfg.Metrics))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		}
		if cfg.JWTSecret != "" {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/whoami", HandleWhoAmI)
		}

		r.Get("/classes", genHandler.HandleClasses)
		r.Post("/generate", genHandler.HandleGenerate)
		r.Post("/strength", genHandler.HandleStrength)
	})

	return r
}

// HandleWhoAmI handles GET /api/v1/whoami requests.
func HandleWhoAmI(w http.ResponseWriter, r *http.Request) {
	sub, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"subject": sub})
}
