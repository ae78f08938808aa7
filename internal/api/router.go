package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	apihandler "github.com/calebmor/sqlfront/internal/api/handler"
	apimw "github.com/calebmor/sqlfront/internal/api/middleware"
	"github.com/calebmor/sqlfront/internal/config"
)

func NewRouter(logger *slog.Logger, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(apimw.Logger(logger))
	r.Use(apimw.CORS)
	r.Use(chimw.Recoverer)

	// Health checks
	health := apihandler.NewHealthHandler()
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		compile := apihandler.NewCompileHandler(logger, cfg.Compile)
		r.Post("/compile", compile.Compile)
	})

	return r
}
