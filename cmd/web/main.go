package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/power-mac-book/travelkit-web/internal/config"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/handlers"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/middleware"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/web"
	"github.com/power-mac-book/travelkit-web/internal/infra/integration/travelapi"
	"github.com/power-mac-book/travelkit-web/internal/infra/realtime"
	"github.com/power-mac-book/travelkit-web/internal/infra/session"
	"github.com/power-mac-book/travelkit-web/internal/infra/worker"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

const version = "1.0.0"

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Backend API client and views
	api := travelapi.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	renderer, err := web.NewRenderer()
	if err != nil {
		slog.Error("template parse failed", slog.Any("error", err))
		os.Exit(1)
	}
	store := session.NewCookieStore(cfg.SessionCookie, false)

	// 2. UseCases
	sessionsUC := usecase.NewSessionUseCase(api)
	pagesUC := usecase.NewPageAdminUseCase(api)
	profileUC := usecase.NewProfileUseCase(api)
	catalogUC := usecase.NewCatalogUseCase(api)
	funnelUC := usecase.NewFunnelUseCase(api, cfg.FunnelCacheTTL)
	segmentsUC := usecase.NewSegmentUseCase(api)

	// 3. Realtime hub + refresh worker
	hub := realtime.NewHub()
	refresher := worker.NewFunnelRefreshWorker(funnelUC, hub, cfg.RefreshEvery)
	go refresher.Start(ctx)

	// 4. Handlers
	sessionHandler := handlers.NewSessionHandler(sessionsUC, store, renderer)
	pagesHandler := handlers.NewPagesHandler(pagesUC, renderer)
	profileHandler := handlers.NewProfileHandler(profileUC, renderer)
	catalogHandler := handlers.NewCatalogHandler(catalogUC, renderer)
	funnelHandler := handlers.NewFunnelHandler(funnelUC, catalogUC, segmentsUC, hub, renderer)
	segmentsHandler := handlers.NewSegmentsHandler(segmentsUC, renderer)
	healthHandler := handlers.NewHealthHandler(api, version)

	// 5. Router
	loader := &middleware.SessionLoader{Sessions: sessionsUC, Store: store}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Metrics)
	r.Use(loader.Load)

	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", web.StaticHandler())

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/destinations", http.StatusSeeOther)
	})

	r.Get("/login", sessionHandler.ShowLogin)
	r.Post("/login", sessionHandler.HandleLogin)
	r.Post("/logout", sessionHandler.HandleLogout)

	r.Get("/destinations", catalogHandler.ListDestinations)
	r.Get("/destinations/{id}", catalogHandler.ShowDestination)
	r.Get("/groups", catalogHandler.ListGroups)
	r.With(middleware.RequireUser).Post("/groups/{id}/join", catalogHandler.JoinGroup)

	r.Route("/traveler", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/profile", profileHandler.Show)
		r.Post("/profile", profileHandler.Save)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/pages", pagesHandler.List)
		r.Post("/pages/{id}/publish", pagesHandler.TogglePublish)
		r.Post("/pages/{id}/delete", pagesHandler.Delete)

		r.Get("/funnel", funnelHandler.Page)
		r.Get("/funnel/data", funnelHandler.Data)
		r.Get("/funnel/live", funnelHandler.Live)

		r.Get("/segments", segmentsHandler.List)
		r.Post("/segments/save", segmentsHandler.Save)
		r.Post("/segments/{id}/delete", segmentsHandler.Delete)
		r.Post("/segments/draft", segmentsHandler.ApplyField)
	})

	// 6. Server with graceful shutdown
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("travelkit web listening", slog.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", slog.Any("error", err))
	}
	slog.Info("travelkit web stopped")
}
