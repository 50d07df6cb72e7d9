// Package main runs a one-shot backfill over a block height range.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lockdapp/lockdex-backend/internal/chain"
	"github.com/lockdapp/lockdex-backend/internal/decoder"
	"github.com/lockdapp/lockdex-backend/internal/metrics"
	"github.com/lockdapp/lockdex-backend/internal/model"
	"github.com/lockdapp/lockdex-backend/internal/repository/clickhouse"
	"github.com/lockdapp/lockdex-backend/internal/repository/postgres"
	"github.com/lockdapp/lockdex-backend/internal/service"
)

type config struct {
	PostgresDSN   string        `long:"postgres-dsn" env:"LOCKDEX_HISTORY_POSTGRES_DSN" description:"Postgres DSN for the content store" required:"true"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"LOCKDEX_HISTORY_CLICKHOUSE_DSN" description:"ClickHouse DSN for decode events" required:"true"`
	Network       model.Network `long:"network" env:"LOCKDEX_HISTORY_NETWORK" description:"network name" default:"mainnet"`
	ProtocolTag   string        `long:"protocol-tag" env:"LOCKDEX_HISTORY_PROTOCOL_TAG" description:"keep only transactions mentioning this tag; empty keeps every data-carrying transaction" default:"lockd.app"`
	FromHeight    uint64        `long:"from-height" env:"LOCKDEX_HISTORY_FROM_HEIGHT" description:"first height to backfill" required:"true"`
	ToHeight      uint64        `long:"to-height" env:"LOCKDEX_HISTORY_TO_HEIGHT" description:"last height to backfill; 0 runs to the chain tip"`
	RPCURL        string        `long:"rpc-url" env:"LOCKDEX_HISTORY_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"LOCKDEX_HISTORY_RPC_USER" description:"node RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"LOCKDEX_HISTORY_RPC_PASSWORD" description:"node RPC password"`
	DedupCacheMax int           `long:"dedup-cache-max" env:"LOCKDEX_HISTORY_DEDUP_CACHE_MAX" description:"dedup cache ceiling; 0 uses the default"`
	MetricsAddr   string        `long:"metrics-addr" env:"LOCKDEX_HISTORY_METRICS_ADDR" description:"address for metrics server" default:":2113"`
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

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("history ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	store, err := postgres.NewRepository(cfg.PostgresDSN, metrics.NewPostgresRepository(cfg.Network))
	if err != nil {
		return fmt.Errorf("init content store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("close content store", zap.Error(closeErr))
		}
	}()

	events, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(cfg.Network))
	if err != nil {
		return fmt.Errorf("init event store: %w", err)
	}
	defer func() {
		if closeErr := events.Close(); closeErr != nil {
			logger.Error("close event store", zap.Error(closeErr))
		}
	}()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	source := chain.NewBlockSource(
		chain.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network)),
		cfg.Network,
		cfg.ProtocolTag,
	)
	txDecoder := decoder.NewClassifier(
		decoder.NewDedupCache(cfg.DedupCacheMax),
		metrics.NewDecoder(cfg.Network),
		logger,
	)

	svc, err := service.NewHistoryIndexerService(
		source,
		txDecoder,
		store,
		events,
		metrics.NewIndexer("history", cfg.Network),
		cfg.Network,
		cfg.FromHeight,
		cfg.ToHeight,
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
