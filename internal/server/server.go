package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/config"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/handlers"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(
		NewViewRateLimiter,
		NewRouter,
	),
	fx.Invoke(StartServer),
)

// Assets holds the files served under /static/.
type Assets struct {
	FS fs.FS
}

// RouterParams are the dependencies for building the router
type RouterParams struct {
	fx.In

	Handler *handlers.Handler
	Limiter *ViewRateLimiter
	Assets  Assets
	Log     *slog.Logger
}

// NewRouter creates the chi router with the middleware stack and all routes.
func NewRouter(p RouterParams) *chi.Mux {
	log := p.Log.With(logger.Scope("http"))
	h := p.Handler

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log, "/health", "/metrics"))
	r.Use(middleware.Recoverer)

	if p.Assets.FS != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(p.Assets.FS))))
	}

	r.Get("/", h.LandingPage)
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/views/{id}", func(r chi.Router) {
		r.Use(p.Limiter.Middleware)
		h.RegisterViewRoutes(r)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		h.RegisterAPIRoutes(r)
	})

	return r
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, router *chi.Mux, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
