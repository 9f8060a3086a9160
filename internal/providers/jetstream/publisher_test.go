package jetstream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/messaging"
	"github.com/feral-file/ff-referral/internal/mocks"
	js "github.com/feral-file/ff-referral/internal/providers/jetstream"
)

type testPublisherMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mocks.MockNatsJetStream
	natsConn  *mocks.MockNatsConn
	jetStream *mocks.MockJetStream
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &testPublisherMocks{
		ctrl:      ctrl,
		natsJS:    mocks.NewMockNatsJetStream(ctrl),
		natsConn:  mocks.NewMockNatsConn(ctrl),
		jetStream: mocks.NewMockJetStream(ctrl),
	}
}

var testConfig = js.Config{
	URL:            "nats://localhost:4222",
	StreamName:     "REFERRAL",
	MaxReconnects:  10,
	ReconnectWait:  time.Second,
	ConnectionName: "test-publisher",
}

func newPublisher(t *testing.T, m *testPublisherMocks) messaging.Publisher {
	ctx := context.Background()
	m.natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(m.natsConn, m.jetStream, nil)
	m.jetStream.EXPECT().CreateOrUpdateStream(ctx, js.StreamConfig("REFERRAL", 2*time.Minute)).Return(nil)

	p, err := js.NewPublisher(ctx, testConfig, m.natsJS, adapter.NewJSON())
	require.NoError(t, err)
	return p
}

func TestNewPublisher_ConnectError(t *testing.T) {
	m := setupTestPublisher(t)

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, assert.AnError)

	p, err := js.NewPublisher(context.Background(), testConfig, m.natsJS, adapter.NewJSON())
	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestNewPublisher_StreamError(t *testing.T) {
	m := setupTestPublisher(t)

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.natsConn, m.jetStream, nil)
	m.jetStream.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(errors.New("insufficient resources"))
	m.natsConn.EXPECT().Close()

	_, err := js.NewPublisher(context.Background(), testConfig, m.natsJS, adapter.NewJSON())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REFERRAL")
}

func TestPublishTradeEvent(t *testing.T) {
	m := setupTestPublisher(t)
	p := newPublisher(t, m)

	event := &domain.TradeEvent{TradeInput: domain.TradeInput{
		TradeID:   "t-9",
		UserID:    "trader",
		FeeAmount: decimal.RequireFromString("2.5"),
		Token:     "USDT",
		Chain:     domain.ChainEVM,
	}}

	m.jetStream.EXPECT().Publish(gomock.Any(), "trades.evm.USDT", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			assert.Contains(t, string(data), `"trade_id":"t-9"`)
			assert.Len(t, opts, 1)
			return &jetstream.PubAck{Stream: "REFERRAL", Sequence: 1}, nil
		})

	require.NoError(t, p.PublishTradeEvent(context.Background(), event))
}

func TestPublishClaimEvent(t *testing.T) {
	m := setupTestPublisher(t)
	p := newPublisher(t, m)

	event := &domain.ClaimEvent{ClaimResult: domain.ClaimResult{
		UserID:        "alice",
		Chain:         domain.ChainSVM,
		Token:         "USDC",
		Amount:        decimal.RequireFromString("30"),
		MerkleVersion: 4,
	}}

	m.jetStream.EXPECT().Publish(gomock.Any(), "claims.svm.USDC", gomock.Any(), gomock.Any()).
		Return(&jetstream.PubAck{Stream: "REFERRAL", Sequence: 2}, nil)

	require.NoError(t, p.PublishClaimEvent(context.Background(), event))
	assert.NotEmpty(t, event.EventID)

	m.jetStream.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("no responders"))
	err := p.PublishClaimEvent(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish claim event")
}

func TestClose(t *testing.T) {
	m := setupTestPublisher(t)
	p := newPublisher(t, m)

	m.natsConn.EXPECT().Close()
	p.Close()
}
