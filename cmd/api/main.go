package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/infra/backend"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.IsProduction())
	defer log.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	be, err := backend.Open(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("failed to open backend", zap.Error(err))
	}
	defer be.Close()

	r := gin.New()

	app, err := routes.RegisterRoutes(r, cfg, be, metrics.New(), log, routes.Options{})
	if err != nil {
		log.Fatal("failed to register routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	log.Info("server running", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	// flush pending audit events after the last request finished
	if err := app.Shutdown(ctx); err != nil {
		log.Error("audit queue not drained", zap.Error(err))
	}

	log.Info("server stopped")
}
