package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/commitment"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/ledger"
	"github.com/feral-file/ff-referral/internal/logger"
)

// Application error types surfaced to workflows
const (
	ErrTypeInvalidTrade          = "InvalidTrade"
	ErrTypeInvalidRootRequest    = "InvalidRootRequest"
	ErrTypeRootUpdateUnsupported = "RootUpdateUnsupported"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// ProcessTrade splits the trade fee into ledger entries, exactly once per trade id
	ProcessTrade(ctx context.Context, event domain.TradeEvent) (*domain.TradeResult, error)

	// GenerateRoot snapshots the unclaimed balances into the next root version
	GenerateRoot(ctx context.Context, chain domain.Chain, token string) (*domain.RootRecord, error)

	// PublishRoot pushes a stored root to the distributor contract and returns the tx hash
	PublishRoot(ctx context.Context, record *domain.RootRecord) (string, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	trades ledger.Processor
	roots  commitment.Builder
}

// NewExecutor creates a new executor instance
func NewExecutor(trades ledger.Processor, roots commitment.Builder) Executor {
	return &executor{
		trades: trades,
		roots:  roots,
	}
}

// ProcessTrade processes a trade event into commission ledger entries
func (e *executor) ProcessTrade(ctx context.Context, event domain.TradeEvent) (*domain.TradeResult, error) {
	result, err := e.trades.ProcessTrade(ctx, event.TradeInput)
	if err != nil {
		if domain.IsValidationError(err) {
			return nil, temporal.NewNonRetryableApplicationError(
				err.Error(),
				ErrTypeInvalidTrade,
				err,
			)
		}
		return nil, fmt.Errorf("failed to process trade: %w", err)
	}

	if result.Duplicate {
		logger.InfoCtx(ctx, "Trade already processed", zap.String("tradeID", event.TradeID))
	}

	return result, nil
}

// GenerateRoot generates and stores the next Merkle root for a chain and token
func (e *executor) GenerateRoot(ctx context.Context, chain domain.Chain, token string) (*domain.RootRecord, error) {
	if !domain.IsValidChain(chain) || token == "" {
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("invalid root request: chain=%s token=%s", chain, token),
			ErrTypeInvalidRootRequest,
			domain.ErrInvalidInput,
		)
	}

	record, err := e.roots.GenerateAndStoreRoot(ctx, chain, token)
	if err != nil {
		if domain.IsValidationError(err) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidRootRequest, err)
		}
		return nil, fmt.Errorf("failed to generate root: %w", err)
	}

	return record, nil
}

// PublishRoot publishes a stored root on-chain
func (e *executor) PublishRoot(ctx context.Context, record *domain.RootRecord) (string, error) {
	if record == nil {
		return "", temporal.NewNonRetryableApplicationError("nil root record", ErrTypeInvalidRootRequest, domain.ErrInvalidInput)
	}

	txHash, err := e.roots.PublishRoot(ctx, record)
	if err != nil {
		if errors.Is(err, domain.ErrRootUpdateUnsupported) {
			return "", temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeRootUpdateUnsupported, err)
		}
		return "", err
	}

	return txHash, nil
}
