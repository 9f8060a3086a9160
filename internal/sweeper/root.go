package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/providers/temporal"
	"github.com/feral-file/ff-referral/internal/store"
	"github.com/feral-file/ff-referral/internal/workflows"
)

// RootSweeperConfig holds configuration for the root sweeper
type RootSweeperConfig struct {
	Markets         []domain.Market // Chain and token pairs to commit roots for
	Interval        time.Duration   // Time to sleep between sweep cycles
	WorkerPoolSize  int             // Markets handled concurrently
	TaskQueue       string          // Task queue of the core worker
	WorkflowTimeout time.Duration   // Execution timeout of a root generation
}

// rootSweeper triggers a new root for every market whose ledger moved since the last committed root
type rootSweeper struct {
	config       *RootSweeperConfig
	store        store.Store
	clock        adapter.Clock
	orchestrator temporal.TemporalOrchestrator
	running      atomic.Bool
	stopChan     chan struct{}
	stoppedCh    chan struct{}
}

// NewRootSweeper creates a new root sweeper
func NewRootSweeper(
	config *RootSweeperConfig,
	st store.Store,
	clock adapter.Clock,
	orchestrator temporal.TemporalOrchestrator,
) Sweeper {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.WorkflowTimeout <= 0 {
		config.WorkflowTimeout = 10 * time.Minute
	}
	return &rootSweeper{
		config:       config,
		store:        st,
		clock:        clock,
		orchestrator: orchestrator,
		stopChan:     make(chan struct{}),
		stoppedCh:    make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *rootSweeper) Name() string {
	return "root-sweeper"
}

// Start runs a sweep cycle every interval until the context is canceled or Stop is called
func (s *rootSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting root sweeper",
		zap.Int("markets", len(s.config.Markets)),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("interval", s.config.Interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Root sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Root sweeper stop requested")
			return nil
		default:
			s.runSweepCycle(ctx)
			s.sleep(ctx, s.config.Interval)
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *rootSweeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping root sweeper")

	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Root sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Root sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle checks every market once, in parallel
func (s *rootSweeper) runSweepCycle(ctx context.Context) {
	startTime := s.clock.Now()

	var generatedCount, skippedCount, failedCount atomic.Int32

	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(len(s.config.Markets)),
		pond.WithContext(ctx),
	)
	for _, market := range s.config.Markets {
		pool.Submit(func() {
			generated, err := s.sweepMarket(ctx, market)
			switch {
			case err != nil:
				failedCount.Add(1)
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err, zap.String("market", market.String()))
				}
			case generated:
				generatedCount.Add(1)
			default:
				skippedCount.Add(1)
			}
		})
	}
	pool.StopAndWait()

	logger.InfoCtx(ctx, "Root sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int32("generated", generatedCount.Load()),
		zap.Int32("unchanged", skippedCount.Load()),
		zap.Int32("failed", failedCount.Load()),
	)
}

// sweepMarket generates a root when the ledger or the claims moved past their cursors.
// A claim removes the claimer's leaf from the live tree, so it needs a new root as much as a trade does.
// The cursors only move after the root workflow completed.
func (s *rootSweeper) sweepMarket(ctx context.Context, market domain.Market) (bool, error) {
	latestEntryID, err := s.store.GetLatestEntryID(ctx, market.Chain, market.Token)
	if err != nil {
		return false, fmt.Errorf("failed to get latest ledger entry: %w", err)
	}
	latestClaimID, err := s.store.GetLatestClaimID(ctx, market.Chain, market.Token)
	if err != nil {
		return false, fmt.Errorf("failed to get latest claim: %w", err)
	}

	entryKey := domain.RootCursorKey(market.Chain, market.Token)
	entryCursor, err := s.store.GetCursor(ctx, entryKey)
	if err != nil {
		return false, fmt.Errorf("failed to get root cursor: %w", err)
	}
	claimKey := domain.RootClaimCursorKey(market.Chain, market.Token)
	claimCursor, err := s.store.GetCursor(ctx, claimKey)
	if err != nil {
		return false, fmt.Errorf("failed to get root claim cursor: %w", err)
	}

	if latestEntryID == entryCursor && latestClaimID == claimCursor {
		return false, nil
	}

	logger.InfoCtx(ctx, "Ledger or claims moved, generating root",
		zap.String("market", market.String()),
		zap.Uint64("entry_cursor", entryCursor),
		zap.Uint64("latest_entry_id", latestEntryID),
		zap.Uint64("claim_cursor", claimCursor),
		zap.Uint64("latest_claim_id", latestClaimID),
	)

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	opts := client.StartWorkflowOptions{
		ID:                       workflows.RootWorkflowID(market.Chain, market.Token, latestEntryID, latestClaimID),
		TaskQueue:                s.config.TaskQueue,
		WorkflowExecutionTimeout: s.config.WorkflowTimeout,
	}
	run, err := temporal.StartOnce(ctx, s.orchestrator, opts, w.GenerateMerkleRoot, market.Chain, market.Token)
	if err != nil {
		return false, err
	}

	if run != nil {
		var record domain.RootRecord
		if err := run.Get(ctx, &record); err != nil {
			return false, fmt.Errorf("root workflow %s failed: %w", opts.ID, err)
		}
		logger.InfoCtx(ctx, "Root generated",
			zap.String("market", market.String()),
			zap.Uint64("version", record.Version),
			zap.String("root", record.Root),
		)
	}

	if err := s.setCursorWithRetry(ctx, entryKey, latestEntryID); err != nil {
		return false, err
	}
	if err := s.setCursorWithRetry(ctx, claimKey, latestClaimID); err != nil {
		return false, err
	}

	return true, nil
}

// setCursorWithRetry stores the cursor with exponential backoff.
// A lost cursor update only costs a redundant root on the next cycle.
func (s *rootSweeper) setCursorWithRetry(ctx context.Context, key string, value uint64) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 1 * time.Minute

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Root cursor update failed, retrying",
			zap.Error(err),
			zap.String("key", key),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	err := backoff.RetryNotify(func() error {
		return s.store.SetCursor(ctx, key, value)
	}, backoff.WithContext(b, ctx), notifyOnError)
	if err != nil {
		return fmt.Errorf("failed to set root cursor after %d attempts: %w", attemptCount+1, err)
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context cancellation or Stop.
// Returns true if sleep completed normally.
func (s *rootSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
