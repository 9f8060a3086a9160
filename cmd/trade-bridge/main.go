package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/bridge"
	"github.com/feral-file/ff-referral/internal/config"
	"github.com/feral-file/ff-referral/internal/logger"
	temporal "github.com/feral-file/ff-referral/internal/providers/temporal"
	"github.com/feral-file/ff-referral/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadTradeBridgeConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Service:         "trade-bridge",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Trade Bridge")

	// The store is only read to skip trades that are already processed
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")
	dataStore := store.NewPGStore(db)

	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	tradeBridge, err := bridge.NewBridge(
		bridge.Config{
			URL:                cfg.NATS.URL,
			StreamName:         cfg.NATS.StreamName,
			ConsumerName:       cfg.NATS.ConsumerName,
			MaxReconnects:      cfg.NATS.MaxReconnects,
			ReconnectWait:      cfg.NATS.ReconnectWait,
			ConnectionName:     cfg.NATS.ConnectionName,
			AckWaitTimeout:     cfg.NATS.AckWait,
			MaxDeliver:         cfg.NATS.MaxDeliver,
			TemporalTaskQueue:  cfg.Temporal.TaskQueue,
			WorkflowRunTimeout: cfg.WorkflowRunTimeout,
			Concurrency:        cfg.NATS.Concurrency,
		},
		adapter.NewNatsJetStream(),
		dataStore,
		temporal.NewOrchestrator(temporalClient),
		adapter.NewJSON(),
	)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create trade bridge", zap.Error(err))
	}
	defer tradeBridge.Close()
	logger.InfoCtx(ctx, "Trade bridge created",
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := tradeBridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "bridge"))
	}
	cancel()

	// In-flight messages are redelivered after ack wait if they did not finish
	time.Sleep(time.Second)

	logger.Info("Trade Bridge stopped")
}
