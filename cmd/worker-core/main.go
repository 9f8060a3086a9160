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
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/commission"
	"github.com/feral-file/ff-referral/internal/commitment"
	"github.com/feral-file/ff-referral/internal/config"
	"github.com/feral-file/ff-referral/internal/ledger"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/onchain"
	temporal "github.com/feral-file/ff-referral/internal/providers/temporal"
	"github.com/feral-file/ff-referral/internal/store"
	"github.com/feral-file/ff-referral/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerCoreConfig(*configFile, *envPath)
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
		Service:         "worker-core",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Worker Core")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")
	dataStore := store.NewPGStore(db)

	cashbackRate, err := cfg.Commission.CashbackRate()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid cashback rate", zap.Error(err))
	}
	policy, err := commission.NewPolicyFromRates(cfg.Commission.UplineRates)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid commission rates", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Loaded commission policy", zap.Float64s("upline_rates", cfg.Commission.UplineRates))

	// Only the worker signs root updates
	registry, closeChains, err := onchain.Dial(ctx, onchain.DialConfig{
		EVMRPCURL:     cfg.Onchain.EVM.RPCURL,
		EVMChainID:    cfg.Onchain.EVM.ChainID,
		EVMPrivateKey: cfg.Onchain.EVM.PrivateKey,
		SVMRPCURL:     cfg.Onchain.SVM.RPCURL,
	}, adapter.NewEthClientDialer(), adapter.NewSolanaRPC)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to chains", zap.Error(err))
	}
	defer closeChains()

	aggregator := ledger.NewAggregator(dataStore)
	executor := workflows.NewExecutor(
		ledger.NewProcessor(dataStore, policy, cashbackRate),
		commitment.NewBuilder(commitment.Config{Contracts: cfg.Onchain.Contracts()}, dataStore, aggregator, registry),
	)

	// Connect to Temporal with logger integration
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

	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.TaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("taskQueue", cfg.Temporal.TaskQueue))

	workerCore := workflows.NewWorkerCore(executor, workflows.WorkerCoreConfig{
		PublishRoots:     cfg.PublishRoots,
		TradeMaxAttempts: cfg.TradeMaxAttempts,
	})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerCore.ProcessTradeEvent)
	temporalWorker.RegisterWorkflow(workerCore.GenerateMerkleRoot)
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.ProcessTrade)
	temporalWorker.RegisterActivity(executor.GenerateRoot)
	temporalWorker.RegisterActivity(executor.PublishRoot)
	logger.InfoCtx(ctx, "Registered activities")

	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks", zap.Bool("publish_roots", cfg.PublishRoots))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("Shutting down worker...")
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
