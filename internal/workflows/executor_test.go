package workflows_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/mocks"
	"github.com/feral-file/ff-referral/internal/workflows"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl     *gomock.Controller
	trades   *mocks.MockTradeProcessor
	roots    *mocks.MockRootBuilder
	executor workflows.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:   ctrl,
		trades: mocks.NewMockTradeProcessor(ctrl),
		roots:  mocks.NewMockRootBuilder(ctrl),
	}
	tm.executor = workflows.NewExecutor(tm.trades, tm.roots)

	return tm
}

func requireAppErrorType(t *testing.T, err error, errType string) {
	t.Helper()
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr), "expected application error, got %v", err)
	assert.Equal(t, errType, appErr.Type())
	assert.True(t, appErr.NonRetryable())
}

// ====================================================================================
// ProcessTrade Tests
// ====================================================================================

func TestProcessTrade_Success(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	event := domain.TradeEvent{TradeInput: domain.TradeInput{
		TradeID:   "t-1",
		UserID:    "trader",
		FeeAmount: decimal.RequireFromString("10"),
		Token:     "USDT",
		Chain:     domain.ChainEVM,
	}}
	expected := &domain.TradeResult{TradeID: "t-1"}

	m.trades.EXPECT().ProcessTrade(ctx, event.TradeInput).Return(expected, nil)

	result, err := m.executor.ProcessTrade(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestProcessTrade_ValidationErrorIsNonRetryable(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	event := domain.TradeEvent{TradeInput: domain.TradeInput{TradeID: "t-1", FeeAmount: decimal.RequireFromString("-1")}}

	m.trades.EXPECT().ProcessTrade(ctx, event.TradeInput).Return(nil, fmt.Errorf("%w: -1", domain.ErrNegativeFee))

	_, err := m.executor.ProcessTrade(ctx, event)
	requireAppErrorType(t, err, workflows.ErrTypeInvalidTrade)
}

func TestProcessTrade_StoreErrorIsRetryable(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	event := domain.TradeEvent{TradeInput: domain.TradeInput{TradeID: "t-1"}}

	m.trades.EXPECT().ProcessTrade(ctx, event.TradeInput).Return(nil, errors.New("connection reset"))

	_, err := m.executor.ProcessTrade(ctx, event)
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	assert.False(t, errors.As(err, &appErr))
	assert.Contains(t, err.Error(), "connection reset")
}

// ====================================================================================
// GenerateRoot / PublishRoot Tests
// ====================================================================================

func TestGenerateRoot(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	record := &domain.RootRecord{Chain: domain.ChainSVM, Token: "USDC", Version: 1, Root: domain.ZERO_ROOT}

	m.roots.EXPECT().GenerateAndStoreRoot(ctx, domain.ChainSVM, "USDC").Return(record, nil)

	got, err := m.executor.GenerateRoot(ctx, domain.ChainSVM, "USDC")
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestGenerateRoot_InvalidRequest(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	_, err := m.executor.GenerateRoot(context.Background(), "tezos", "USDC")
	requireAppErrorType(t, err, workflows.ErrTypeInvalidRootRequest)

	_, err = m.executor.GenerateRoot(context.Background(), domain.ChainEVM, "")
	requireAppErrorType(t, err, workflows.ErrTypeInvalidRootRequest)
}

func TestGenerateRoot_StoreError(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.roots.EXPECT().GenerateAndStoreRoot(ctx, domain.ChainEVM, "USDT").Return(nil, errors.New("timeout"))

	_, err := m.executor.GenerateRoot(ctx, domain.ChainEVM, "USDT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate root")
}

func TestPublishRoot(t *testing.T) {
	ctx := context.Background()
	record := &domain.RootRecord{Chain: domain.ChainEVM, Token: "USDT", Version: 2, Root: "0x01"}

	t.Run("success", func(t *testing.T) {
		m := setupTestExecutor(t)
		m.roots.EXPECT().PublishRoot(ctx, record).Return("0xtx", nil)

		txHash, err := m.executor.PublishRoot(ctx, record)
		require.NoError(t, err)
		assert.Equal(t, "0xtx", txHash)
	})

	t.Run("unsupported is non-retryable", func(t *testing.T) {
		m := setupTestExecutor(t)
		m.roots.EXPECT().PublishRoot(ctx, record).Return("", fmt.Errorf("failed to update on-chain root: %w", domain.ErrRootUpdateUnsupported))

		_, err := m.executor.PublishRoot(ctx, record)
		requireAppErrorType(t, err, workflows.ErrTypeRootUpdateUnsupported)
	})

	t.Run("rpc failure is retryable", func(t *testing.T) {
		m := setupTestExecutor(t)
		m.roots.EXPECT().PublishRoot(ctx, record).Return("", errors.New("nonce too low"))

		_, err := m.executor.PublishRoot(ctx, record)
		require.Error(t, err)
		var appErr *temporal.ApplicationError
		assert.False(t, errors.As(err, &appErr))
	})

	t.Run("nil record", func(t *testing.T) {
		m := setupTestExecutor(t)
		_, err := m.executor.PublishRoot(ctx, nil)
		requireAppErrorType(t, err, workflows.ErrTypeInvalidRootRequest)
	})
}
