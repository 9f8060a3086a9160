package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// DuplicateWindow is the stream's message id deduplication window
	DuplicateWindow time.Duration
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher connects to NATS, makes sure the stream carrying trade and claim subjects exists
// and returns a JetStream publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	nc, js, err := natsJS.Connect(cfg.URL, adapter.NatsOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if cfg.DuplicateWindow <= 0 {
		cfg.DuplicateWindow = 2 * time.Minute
	}
	err = js.CreateOrUpdateStream(ctx, StreamConfig(cfg.StreamName, cfg.DuplicateWindow))
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create/update stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// StreamConfig returns the stream definition for trade and claim subjects
func StreamConfig(name string, duplicateWindow time.Duration) jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:       name,
		Subjects:   []string{messaging.TradeSubjectFilter, messaging.ClaimSubjectFilter},
		Retention:  jetstream.LimitsPolicy,
		Storage:    jetstream.FileStorage,
		Duplicates: duplicateWindow,
	}
}

// PublishTradeEvent publishes a trade event; the trade id doubles as message id so redundant publishes are dropped
func (p *publisher) PublishTradeEvent(ctx context.Context, event *domain.TradeEvent) error {
	logger.DebugCtx(ctx, "Publishing trade event", zap.String("tradeID", event.TradeID))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal trade event: %w", err)
	}

	subject := messaging.TradeSubject(event.Chain, event.Token)
	_, err = p.js.Publish(ctx, subject, data, jetstream.WithMsgID("trade-"+event.TradeID))
	if err != nil {
		return fmt.Errorf("failed to publish trade event: %w", err)
	}

	return nil
}

// PublishClaimEvent publishes a claim event under its event id, generating one if missing
func (p *publisher) PublishClaimEvent(ctx context.Context, event *domain.ClaimEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	logger.DebugCtx(ctx, "Publishing claim event",
		zap.String("eventID", event.EventID),
		zap.String("userID", event.UserID),
		zap.Uint64("version", event.MerkleVersion))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal claim event: %w", err)
	}

	subject := messaging.ClaimSubject(event.Chain, event.Token)
	_, err = p.js.Publish(ctx, subject, data, jetstream.WithMsgID(event.EventID))
	if err != nil {
		return fmt.Errorf("failed to publish claim event: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
