package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"group-analytics/config"
	"group-analytics/database"
	"group-analytics/handlers"
	"group-analytics/logger"
	"group-analytics/repository"
	"group-analytics/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logg, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, "group-analytics")
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer func() { _ = logg.Sync() }()

	if err := run(cfg, logg); err != nil {
		logg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(cfg.DBPath, logg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	repo := repository.NewActivityRepository(db)
	session := service.NewSession(repo, cfg.AnalyticsOptions(), logg)

	// Warm the cache; an empty or unreachable store is not fatal.
	if _, err := session.Refresh(ctx); err != nil {
		logg.Warn("initial analytics refresh failed", zap.Error(err))
	}
	if cfg.RefreshInterval > 0 {
		go session.Run(ctx, cfg.RefreshInterval)
	}

	gin.SetMode(cfg.GinMode)
	router := handlers.NewRouter(handlers.NewHandler(session, repo, logg), logg)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		logg.Info("starting group analytics server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
