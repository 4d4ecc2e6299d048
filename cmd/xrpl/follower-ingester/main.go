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
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ctimdex-backend/internal/metrics"
	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
	"github.com/goodnatureofminers/ctimdex-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/ctimdex-backend/internal/service"
	"github.com/goodnatureofminers/ctimdex-backend/internal/xrpl"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"FOLLOWER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       model.Network `long:"network" env:"FOLLOWER_NETWORK" description:"network name (mainnet, testnet, devnet, xahau)" required:"true"`
	RPCURL        string        `long:"rpc-url" env:"FOLLOWER_RPC_URL" description:"rippled JSON-RPC URL" default:"http://127.0.0.1:5005"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"FOLLOWER_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	MetricsAddr   string        `long:"metrics-addr" env:"FOLLOWER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("follower ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	networkID, err := cfg.Network.ID()
	if err != nil {
		return fmt.Errorf("resolve network id: %w", err)
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	rpcClient, err := xrpl.NewClient(cfg.RPCURL, cfg.HTTPTimeout, metrics.NewRPCClient(cfg.Network))
	if err != nil {
		return fmt.Errorf("init xrpl rpc client: %w", err)
	}
	source := xrpl.NewSource(rpcClient, cfg.Network, networkID)

	follower := service.NewFollowerIngester(
		repo,
		source,
		cfg.Network,
		networkID,
		logger,
		metrics.NewIngester("follower", cfg.Network),
	)
	return follower.Run(ctx)
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
