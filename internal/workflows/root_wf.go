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

// GenerateMerkleRoot generates the next Merkle root for a chain and token.
// Publishing is best-effort: the stored root is returned even when the publish step fails.
func (w *workerCore) GenerateMerkleRoot(ctx workflow.Context, chain domain.Chain, token string) (*domain.RootRecord, error) {
	logger.InfoWf(ctx, "Generating merkle root",
		zap.String("chain", string(chain)),
		zap.String("token", token),
	)

	generateCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    3,
		},
	})

	var record domain.RootRecord
	if err := workflow.ExecuteActivity(generateCtx, w.executor.GenerateRoot, chain, token).Get(ctx, &record); err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to generate merkle root"),
			zap.Error(err),
			zap.String("chain", string(chain)),
			zap.String("token", token),
		)
		return nil, err
	}

	logger.InfoWf(ctx, "Merkle root stored",
		zap.String("chain", string(chain)),
		zap.String("token", token),
		zap.Uint64("version", record.Version),
		zap.String("root", record.Root),
	)

	if !w.config.PublishRoots || record.Root == domain.ZERO_ROOT {
		return &record, nil
	}

	publishCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 3 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        5 * time.Second,
			BackoffCoefficient:     2.0,
			MaximumAttempts:        3,
			NonRetryableErrorTypes: []string{ErrTypeRootUpdateUnsupported},
		},
	})

	var txHash string
	if err := workflow.ExecuteActivity(publishCtx, w.executor.PublishRoot, &record).Get(ctx, &txHash); err != nil {
		logger.WarnWf(ctx, "Failed to publish merkle root, keeping stored root",
			zap.Error(err),
			zap.String("chain", string(chain)),
			zap.String("token", token),
			zap.Uint64("version", record.Version),
		)
		return &record, nil
	}

	logger.InfoWf(ctx, "Merkle root published",
		zap.String("chain", string(chain)),
		zap.String("token", token),
		zap.Uint64("version", record.Version),
		zap.String("txHash", txHash),
	)

	return &record, nil
}
