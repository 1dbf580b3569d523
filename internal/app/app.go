package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/mkravets/contentangle-backend/internal/adapter/postgres"
	anglerepo "github.com/mkravets/contentangle-backend/internal/adapter/postgres/angle"
	brandrepo "github.com/mkravets/contentangle-backend/internal/adapter/postgres/brand"
	gencontentrepo "github.com/mkravets/contentangle-backend/internal/adapter/postgres/gencontent"
	idearepo "github.com/mkravets/contentangle-backend/internal/adapter/postgres/idea"
	"github.com/mkravets/contentangle-backend/internal/adapter/provider/n8n"
	"github.com/mkravets/contentangle-backend/internal/bus"
	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/config"
	"github.com/mkravets/contentangle-backend/internal/hierarchy"
	brandservice "github.com/mkravets/contentangle-backend/internal/service/brand"
	contentservice "github.com/mkravets/contentangle-backend/internal/service/content"
	"github.com/mkravets/contentangle-backend/internal/transport/middleware"
	"github.com/mkravets/contentangle-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// repositories, cache, event bus and services, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	brands := brandrepo.New(pool)
	angles := anglerepo.New(pool)
	ideas := idearepo.New(pool)
	generated := gencontentrepo.New(pool)

	store := cache.NewStore()
	events := bus.New(logger)
	generator := n8n.NewClient(cfg.Generation, logger)
	trees := hierarchy.NewLoader(brands, angles, ideas, generated)

	brandSvc := brandservice.NewService(
		logger, brands, angles, ideas, generated,
		trees, generator, txManager, store, cfg.Cache,
	)
	contentSvc := contentservice.NewService(
		logger, brands, angles, ideas, generated,
		generator, events, txManager, store, cfg.Cache,
	)
	defer contentSvc.Close()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
	}

	router := rest.NewRouter(rest.RouterDeps{
		Brands:      rest.NewBrandHandler(brandSvc, logger),
		Content:     rest.NewContentHandler(contentSvc, logger),
		Events:      rest.NewEventStreamHandler(events, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		RateLimiter: limiter,
		Logger:      logger,
		Config:      cfg,
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
