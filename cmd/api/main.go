package main

import (
	"context"
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
	"github.com/feral-file/ff-referral/internal/api/middleware"
	"github.com/feral-file/ff-referral/internal/api/server"
	"github.com/feral-file/ff-referral/internal/api/shared/executor"
	"github.com/feral-file/ff-referral/internal/claim"
	"github.com/feral-file/ff-referral/internal/commission"
	"github.com/feral-file/ff-referral/internal/commitment"
	"github.com/feral-file/ff-referral/internal/config"
	"github.com/feral-file/ff-referral/internal/ledger"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/onchain"
	"github.com/feral-file/ff-referral/internal/providers/jetstream"
	"github.com/feral-file/ff-referral/internal/ratelimit"
	temporal "github.com/feral-file/ff-referral/internal/providers/temporal"
	"github.com/feral-file/ff-referral/internal/referral"
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
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
		Service:         "api-server",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Referral API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)
	dataStore := store.NewPGStore(db)

	// Core services
	cashbackRate, err := cfg.Commission.CashbackRate()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid cashback rate", zap.Error(err))
	}
	policy, err := commission.NewPolicyFromRates(cfg.Commission.UplineRates)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid commission rates", zap.Error(err))
	}

	registry, closeChains, err := onchain.Dial(ctx, onchain.DialConfig{
		EVMRPCURL:  cfg.Onchain.EVM.RPCURL,
		EVMChainID: cfg.Onchain.EVM.ChainID,
		SVMRPCURL:  cfg.Onchain.SVM.RPCURL,
	}, adapter.NewEthClientDialer(), adapter.NewSolanaRPC)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to chains", zap.Error(err))
	}
	defer closeChains()

	aggregator := ledger.NewAggregator(dataStore)
	deps := executor.Deps{
		Trades:    ledger.NewProcessor(dataStore, policy, cashbackRate),
		Balances:  aggregator,
		Referrals: referral.NewService(referral.Config{DefaultCashbackRate: cashbackRate}, dataStore),
		Roots: commitment.NewBuilder(commitment.Config{
			Contracts: cfg.Onchain.Contracts(),
		}, dataStore, aggregator, registry),
		Claims: claim.NewProcessor(claim.Config{
			Contracts:     cfg.Onchain.Contracts(),
			VerifyTimeout: cfg.Onchain.VerifyTimeout,
		}, dataStore, aggregator, registry),
		Clock: adapter.NewClock(),
	}

	// Event publishing is optional; async trades are rejected without it
	if cfg.NATS.URL != "" {
		publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
			URL:             cfg.NATS.URL,
			StreamName:      cfg.NATS.StreamName,
			MaxReconnects:   cfg.NATS.MaxReconnects,
			ReconnectWait:   cfg.NATS.ReconnectWait,
			ConnectionName:  cfg.NATS.ConnectionName,
			DuplicateWindow: cfg.NATS.DuplicateWindow,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create event publisher", zap.Error(err))
		}
		defer publisher.Close()
		deps.Publisher = publisher
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, async trades and claim events are disabled")
	}

	// Connect to Temporal with logger integration
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	deps.Orchestrator = temporal.NewOrchestrator(temporalClient)
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	// Rate limiting of write endpoints, shared across replicas through Redis when configured
	var limiter ratelimit.Limiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		var redisClient adapter.RedisClient
		if cfg.RateLimit.RedisAddr != "" {
			redisClient = adapter.NewRedisClient(cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPassword, cfg.RateLimit.RedisDB)
		}
		limiter, err = ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute:   cfg.RateLimit.RequestsPerMinute,
			Burst:               cfg.RateLimit.Burst,
			KeyPrefix:           cfg.RateLimit.RedisKeyPrefix,
			EnableLocalFallback: cfg.RateLimit.EnableLocalFallback,
		}, redisClient, adapter.NewClock())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
		defer func() {
			if err := limiter.Close(); err != nil {
				logger.Warn("Failed to close rate limiter", zap.Error(err))
			}
		}()
	}

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			JWTIssuer:    cfg.Auth.JWTIssuer,
			APIKeys:      cfg.Auth.APIKeys,
		},
		RateLimiter: limiter,
	}, executor.NewExecutor(deps, cfg.Temporal.TaskQueue))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// The original ctx is canceled by now
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}
