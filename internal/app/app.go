package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"TechDashboard/internal/config"
	"TechDashboard/internal/infrastructure/feeds"
	"TechDashboard/internal/infrastructure/storage"
	"TechDashboard/internal/infrastructure/web"
	"TechDashboard/internal/logging"
	"TechDashboard/internal/usecase"
)

// Application wires configs to use cases and owns the HTTP server lifecycle.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	likes  *storage.LikeStore
	server *http.Server
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	client := feeds.NewHTTPClient(cfg.Feeds.Timeout)
	likes := storage.NewLikeStore()

	dashboard := usecase.NewDashboard(usecase.DashboardDeps{
		News:   feeds.NewNewsFetcher(client, cfg.Feeds, baseLogger.With("component", "feeds.news")),
		Jobs:   feeds.NewJobsFetcher(client, cfg.Feeds, baseLogger.With("component", "feeds.jobs")),
		Likes:  likes,
		Logger: baseLogger.With("component", "dashboard"),
	})

	renderer, err := web.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      web.NewHandler(dashboard, renderer, baseLogger.With("component", "http")),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(baseLogger.Handler(), slog.LevelError),
	}

	return &Application{cfg: cfg, logger: baseLogger, likes: likes, server: server}, nil
}

// Handler exposes the routed HTTP handler.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

// Run listens on the configured address until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln and shuts down gracefully once ctx is done.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	a.logger.Info("server listening",
		"addr", ln.Addr().String(),
		"news_feed", a.cfg.Feeds.NewsFeedURL,
		"jobs_api", a.cfg.Feeds.JobsAPIURL,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	a.logger.Info("shutting down", "tracked_urls", a.likes.Len())
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
