package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go/jetstream"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/messaging"
	"github.com/feral-file/ff-referral/internal/providers/temporal"
	"github.com/feral-file/ff-referral/internal/store"
	"github.com/feral-file/ff-referral/internal/workflows"
)

// Config holds the configuration for the trade bridge
type Config struct {
	URL                string
	StreamName         string
	ConsumerName       string
	MaxReconnects      int
	ReconnectWait      time.Duration
	ConnectionName     string
	AckWaitTimeout     time.Duration
	MaxDeliver         int
	TemporalTaskQueue  string
	WorkflowRunTimeout time.Duration
	// Concurrency bounds the messages handled in parallel
	Concurrency int
}

// Bridge defines the interface for the trade bridge
type Bridge interface {
	// Run consumes trade events until ctx is done
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc           adapter.NatsConn
	js           adapter.JetStream
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	json         adapter.JSON
	validate     *validator.Validate
	config       Config
}

// NewBridge creates a new trade bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	orchestrator temporal.TemporalOrchestrator,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 16
	}
	if cfg.WorkflowRunTimeout <= 0 {
		cfg.WorkflowRunTimeout = 10 * time.Minute
	}

	nc, js, err := natsJS.Connect(cfg.URL, adapter.NatsOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:           nc,
		js:           js,
		store:        st,
		orchestrator: orchestrator,
		json:         jsonAdapter,
		validate:     validator.New(),
		config:       cfg,
	}, nil
}

// Run starts the trade bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting trade bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: messaging.TradeSubjectFilter,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	pool := pond.NewPool(b.config.Concurrency, pond.WithContext(ctx))
	defer pool.StopAndWait()

	msgChan := make(chan adapter.Message, b.config.Concurrency)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		select {
		case msgChan <- msg:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming trade events")

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down trade bridge")
			return ctx.Err()
		case msg := <-msgChan:
			pool.Submit(func() {
				b.handleMessage(ctx, msg)
			})
		}
	}
}

// handleMessage processes a single NATS message.
// Unusable payloads are terminated, transient failures are redelivered and everything else is acked.
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var deliveryCount uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		deliveryCount = metadata.NumDelivered
	}

	var event domain.TradeEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal trade event"), zap.String("subject", msg.Subject()))
		terminate(ctx, msg)
		return
	}

	if err := b.validateEvent(&event); err != nil {
		logger.WarnCtx(ctx, "Dropping invalid trade event",
			zap.Error(err),
			zap.String("tradeID", event.TradeID),
			zap.String("subject", msg.Subject()))
		terminate(ctx, msg)
		return
	}

	logger.InfoCtx(ctx, "Received trade event",
		zap.String("tradeID", event.TradeID),
		zap.String("chain", string(event.Chain)),
		zap.String("token", event.Token),
		zap.Uint64("deliveryCount", deliveryCount),
	)

	processed, err := b.store.IdempotencyKeyExists(ctx, domain.IdempotencyKeyForTrade(event.TradeID))
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to check trade idempotency key"), zap.String("tradeID", event.TradeID))
		nak(ctx, msg)
		return
	}
	if processed {
		logger.InfoCtx(ctx, "Trade already processed, acking", zap.String("tradeID", event.TradeID))
		ack(ctx, msg)
		return
	}

	if err := b.forwardToWorker(ctx, &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to forward trade event to worker"), zap.String("tradeID", event.TradeID))
		nak(ctx, msg)
		return
	}

	ack(ctx, msg)
}

func (b *bridge) validateEvent(event *domain.TradeEvent) error {
	if err := b.validate.Struct(event.TradeInput); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if event.FeeAmount.IsNegative() {
		return fmt.Errorf("%w: %s", domain.ErrNegativeFee, event.FeeAmount)
	}
	return nil
}

// forwardToWorker starts the ProcessTradeEvent workflow, once per trade id
func (b *bridge) forwardToWorker(ctx context.Context, event *domain.TradeEvent) error {
	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})

	opt := client.StartWorkflowOptions{
		ID:                 workflows.TradeWorkflowID(event.TradeID),
		TaskQueue:          b.config.TemporalTaskQueue,
		WorkflowRunTimeout: b.config.WorkflowRunTimeout,
	}
	run, err := temporal.StartOnce(ctx, b.orchestrator, opt, w.ProcessTradeEvent, *event)
	if err != nil {
		return err
	}

	if run == nil {
		logger.InfoCtx(ctx, "Trade workflow already completed", zap.String("tradeID", event.TradeID))
		return nil
	}

	logger.InfoCtx(ctx, "Trade event forwarded to worker",
		zap.String("tradeID", event.TradeID),
		zap.String("workflowID", run.GetID()),
		zap.String("runID", run.GetRunID()),
	)

	return nil
}

func ack(ctx context.Context, msg adapter.Message) {
	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
	}
}

func nak(ctx context.Context, msg adapter.Message) {
	if err := msg.Nak(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
	}
}

func terminate(ctx context.Context, msg adapter.Message) {
	if err := msg.Term(); err != nil && !errors.Is(err, jetstream.ErrMsgAlreadyAckd) {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
