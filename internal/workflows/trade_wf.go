package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
)

// ProcessTradeEvent processes a trade event into commission ledger entries
func (w *workerCore) ProcessTradeEvent(ctx workflow.Context, event domain.TradeEvent) (*domain.TradeResult, error) {
	logger.InfoWf(ctx, "Processing trade event",
		zap.String("tradeID", event.TradeID),
		zap.String("userID", event.UserID),
		zap.String("chain", string(event.Chain)),
		zap.String("token", event.Token),
		zap.String("fee", event.FeeAmount.String()),
	)

	// Configure activity options
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 1 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    w.config.TradeMaxAttempts,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var result domain.TradeResult
	err := workflow.ExecuteActivity(ctx, w.executor.ProcessTrade, event).Get(ctx, &result)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to process trade"),
			zap.Error(err),
			zap.String("tradeID", event.TradeID),
		)
		return nil, err
	}

	logger.InfoWf(ctx, "Trade event processed",
		zap.String("tradeID", event.TradeID),
		zap.Bool("duplicate", result.Duplicate),
		zap.Int("splits", len(result.Splits)),
	)

	return &result, nil
}
