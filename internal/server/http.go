package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/quizmint/quizmint/internal/auth"
	"github.com/quizmint/quizmint/internal/config"
	"github.com/quizmint/quizmint/internal/logging"
	"github.com/quizmint/quizmint/internal/question"
	"github.com/quizmint/quizmint/internal/result"
	"github.com/quizmint/quizmint/pkg/http/respond"
)

// Handlers groups the per-domain HTTP handlers the router mounts.
type Handlers struct {
	Auth     *auth.HTTPHandlers
	Question *question.HTTPHandlers
	Result   *result.HTTPHandlers
}

// NewHTTPServer wires the API routes. Result endpoints sit behind the auth
// gate; generation and auth endpoints are open. Everything under /api
// answers with the uniform envelope, including 404s and 405s.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, authSvc *auth.Service, h Handlers) *http.Server {
	r := chi.NewRouter()

	r.Use(recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("API WORKING"))
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			respond.NotFound(w, "Route not found")
		})
		api.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
			respond.MethodNotAllowed(w)
		})

		api.Post("/auth/register", h.Auth.Register)
		api.Post("/auth/login", h.Auth.Login)

		api.Post("/generate", h.Question.Generate)

		api.Group(func(protected chi.Router) {
			protected.Use(auth.RequireAuth(authSvc, logger))
			protected.Post("/results", h.Result.Create)
			protected.Get("/results", h.Result.List)
		})
	})

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}

// recoverer converts panics into a 500 envelope instead of a dropped
// connection, logging the panic value server-side only.
func recoverer(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panicked")
					respond.InternalError(w, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), logger)))
		})
	}
}
