package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	temporalmocks "go.temporal.io/sdk/mocks"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/mocks"
	"github.com/feral-file/ff-referral/internal/sweeper"
)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	clock        *mocks.MockClock
	orchestrator *mocks.MockTemporalOrchestrator
	sweeper      sweeper.Sweeper
	cycleDone    chan struct{}
}

var evmUSDT = domain.Market{Chain: domain.ChainEVM, Token: "USDT"}

// setupTestSweeper creates all the mocks and sweeper for testing
func setupTestSweeper(t *testing.T, markets ...domain.Market) *testSweeperMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		clock:        mocks.NewMockClock(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
		cycleDone:    make(chan struct{}),
	}

	config := &sweeper.RootSweeperConfig{
		Markets:         markets,
		Interval:        time.Minute,
		WorkerPoolSize:  2,
		TaskQueue:       "test-task-queue",
		WorkflowTimeout: 5 * time.Minute,
	}

	tm.sweeper = sweeper.NewRootSweeper(config, tm.store, tm.clock, tm.orchestrator)

	return tm
}

// expectOneCycle makes the clock report the end of the first cycle and never wake up again
func (tm *testSweeperMocks) expectOneCycle() {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Second).AnyTimes()
	tm.clock.EXPECT().After(time.Minute).DoAndReturn(func(time.Duration) <-chan time.Time {
		close(tm.cycleDone)
		return make(chan time.Time)
	})
}

// runOneCycle starts the sweeper, waits for the first cycle and stops it
func runOneCycle(t *testing.T, tm *testSweeperMocks) {
	t.Helper()

	ctx := context.Background()
	errCh := make(chan error, 1)
	go func() {
		errCh <- tm.sweeper.Start(ctx)
	}()

	select {
	case <-tm.cycleDone:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep cycle did not finish")
	}

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, tm.sweeper.Stop(stopCtx))
	require.NoError(t, <-errCh)
}

func TestRootSweeper_Name(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tm.ctrl.Finish()

	assert.Equal(t, "root-sweeper", tm.sweeper.Name())
}

// expectMarketState sets up the latest ids and the cursors read for a market
func (tm *testSweeperMocks) expectMarketState(market domain.Market, latestEntryID, entryCursor, latestClaimID, claimCursor uint64) {
	tm.store.EXPECT().GetLatestEntryID(gomock.Any(), market.Chain, market.Token).Return(latestEntryID, nil)
	tm.store.EXPECT().GetLatestClaimID(gomock.Any(), market.Chain, market.Token).Return(latestClaimID, nil)
	tm.store.EXPECT().GetCursor(gomock.Any(), domain.RootCursorKey(market.Chain, market.Token)).Return(entryCursor, nil)
	tm.store.EXPECT().GetCursor(gomock.Any(), domain.RootClaimCursorKey(market.Chain, market.Token)).Return(claimCursor, nil)
}

// expectCursorsSet expects both cursors of a market to be advanced
func (tm *testSweeperMocks) expectCursorsSet(market domain.Market, latestEntryID, latestClaimID uint64) {
	tm.store.EXPECT().SetCursor(gomock.Any(), domain.RootCursorKey(market.Chain, market.Token), latestEntryID).Return(nil)
	tm.store.EXPECT().SetCursor(gomock.Any(), domain.RootClaimCursorKey(market.Chain, market.Token), latestClaimID).Return(nil)
}

func TestRootSweeper_GeneratesRootWhenLedgerMoved(t *testing.T) {
	tm := setupTestSweeper(t, evmUSDT)
	defer tm.ctrl.Finish()
	tm.expectOneCycle()

	tm.expectMarketState(evmUSDT, 12, 9, 0, 0)

	run := &temporalmocks.WorkflowRun{}
	run.On("Get", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		record := args.Get(1).(*domain.RootRecord)
		record.Version = 4
		record.Root = "0xabc"
	})

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), domain.ChainEVM, "USDT").
		DoAndReturn(func(_ context.Context, opts client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "generate-root-evm-USDT-12-0", opts.ID)
			assert.Equal(t, "test-task-queue", opts.TaskQueue)
			assert.Equal(t, 5*time.Minute, opts.WorkflowExecutionTimeout)
			return run, nil
		})

	tm.expectCursorsSet(evmUSDT, 12, 0)

	runOneCycle(t, tm)
	run.AssertExpectations(t)
}

func TestRootSweeper_GeneratesRootWhenOnlyClaimsMoved(t *testing.T) {
	tm := setupTestSweeper(t, evmUSDT)
	defer tm.ctrl.Finish()
	tm.expectOneCycle()

	tm.expectMarketState(evmUSDT, 12, 12, 4, 3)

	run := &temporalmocks.WorkflowRun{}
	run.On("Get", mock.Anything, mock.Anything).Return(nil)

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), domain.ChainEVM, "USDT").
		DoAndReturn(func(_ context.Context, opts client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "generate-root-evm-USDT-12-4", opts.ID)
			return run, nil
		})

	tm.expectCursorsSet(evmUSDT, 12, 4)

	runOneCycle(t, tm)
	run.AssertExpectations(t)
}

func TestRootSweeper_SkipsUnchangedMarket(t *testing.T) {
	tm := setupTestSweeper(t, evmUSDT)
	defer tm.ctrl.Finish()
	tm.expectOneCycle()

	tm.expectMarketState(evmUSDT, 7, 7, 2, 2)

	runOneCycle(t, tm)
}

func TestRootSweeper_WorkflowFailureKeepsCursor(t *testing.T) {
	tm := setupTestSweeper(t, evmUSDT)
	defer tm.ctrl.Finish()
	tm.expectOneCycle()

	tm.expectMarketState(evmUSDT, 3, 0, 1, 0)

	run := &temporalmocks.WorkflowRun{}
	run.On("Get", mock.Anything, mock.Anything).Return(errors.New("activity failed"))

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), domain.ChainEVM, "USDT").
		Return(run, nil)

	// no SetCursor expected
	runOneCycle(t, tm)
}

func TestRootSweeper_CompletedWorkflowAdvancesCursor(t *testing.T) {
	tm := setupTestSweeper(t, evmUSDT)
	defer tm.ctrl.Finish()
	tm.expectOneCycle()

	tm.expectMarketState(evmUSDT, 5, 2, 0, 0)
	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), domain.ChainEVM, "USDT").
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""))
	tm.expectCursorsSet(evmUSDT, 5, 0)

	runOneCycle(t, tm)
}

func TestRootSweeper_StoreErrorDoesNotBlockOtherMarkets(t *testing.T) {
	svmUSDC := domain.Market{Chain: domain.ChainSVM, Token: "USDC"}
	tm := setupTestSweeper(t, evmUSDT, svmUSDC)
	defer tm.ctrl.Finish()
	tm.expectOneCycle()

	tm.store.EXPECT().GetLatestEntryID(gomock.Any(), domain.ChainEVM, "USDT").Return(uint64(0), errors.New("db down"))

	tm.expectMarketState(svmUSDC, 1, 0, 0, 0)
	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), domain.ChainSVM, "USDC").
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""))
	tm.expectCursorsSet(svmUSDC, 1, 0)

	runOneCycle(t, tm)
}

func TestRootSweeper_StopWhenNotRunning(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tm.ctrl.Finish()

	assert.NoError(t, tm.sweeper.Stop(context.Background()))
}
