// Package main serves the REST read API over the content store.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/lockdapp/lockdex-backend/internal/metrics"
	"github.com/lockdapp/lockdex-backend/internal/model"
	"github.com/lockdapp/lockdex-backend/internal/repository/postgres"
	"github.com/lockdapp/lockdex-backend/internal/transport"
)

type config struct {
	Addr         string        `long:"addr" env:"LOCKDEX_API_ADDR" description:"listen address" default:":8000"`
	PostgresDSN  string        `long:"postgres-dsn" env:"LOCKDEX_API_POSTGRES_DSN" description:"Postgres DSN for the content store" required:"true"`
	Network      model.Network `long:"network" env:"LOCKDEX_API_NETWORK" description:"network name" default:"mainnet"`
	ShareBaseURL string        `long:"share-base-url" env:"LOCKDEX_API_SHARE_BASE_URL" description:"base URL encoded into share QR codes" default:"https://lockd.app/post"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	store, err := postgres.NewRepository(cfg.PostgresDSN, metrics.NewPostgresRepository(cfg.Network))
	if err != nil {
		return fmt.Errorf("init content store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("close content store", zap.Error(closeErr))
		}
	}()

	mux := http.NewServeMux()
	handler := transport.NewContentHandler(store, metrics.NewAPI(), cfg.Network, cfg.ShareBaseURL, logger.Named("api"))
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
