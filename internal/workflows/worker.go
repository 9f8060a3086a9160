package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/ff-referral/internal/domain"
)

// WorkerCore defines the interface for the trade and root workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// ProcessTradeEvent records the commission splits of a trade event
	ProcessTradeEvent(ctx workflow.Context, event domain.TradeEvent) (*domain.TradeResult, error)

	// GenerateMerkleRoot generates the next root for a chain and token, then publishes it on a best-effort basis
	GenerateMerkleRoot(ctx workflow.Context, chain domain.Chain, token string) (*domain.RootRecord, error)
}

type WorkerCoreConfig struct {
	// PublishRoots enables pushing freshly generated roots to the distributor contracts
	PublishRoots bool
	// TradeMaxAttempts bounds the retries of the trade activity
	TradeMaxAttempts int32
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.TradeMaxAttempts <= 0 {
		config.TradeMaxAttempts = 5
	}
	return &workerCore{
		executor: executor,
		config:   config,
	}
}

// TradeWorkflowID returns the workflow id of a trade, one per trade id
func TradeWorkflowID(tradeID string) string {
	return "process-trade-" + tradeID
}

// RootWorkflowID returns the workflow id of a root generation over a given ledger and claim state
func RootWorkflowID(chain domain.Chain, token string, latestEntryID, latestClaimID uint64) string {
	return fmt.Sprintf("generate-root-%s-%s-%d-%d", chain, token, latestEntryID, latestClaimID)
}
