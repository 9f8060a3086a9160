package workflows_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/mocks"
	"github.com/feral-file/ff-referral/internal/workflows"
)

// WorkflowTestSuite is the test suite for the trade and root workflows
type WorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockCoreExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *WorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockCoreExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{
		PublishRoots:     true,
		TradeMaxAttempts: 2,
	})
}

// TearDownTest is called after each test
func (s *WorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestWorkflowTestSuite runs the test suite
func TestWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}

func tradeEvent() domain.TradeEvent {
	return domain.TradeEvent{
		TradeInput: domain.TradeInput{
			TradeID:   "t-1",
			UserID:    "trader",
			FeeAmount: decimal.RequireFromString("10"),
			Token:     "USDT",
			Chain:     domain.ChainEVM,
			Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
}

// ====================================================================================
// ProcessTradeEvent Tests
// ====================================================================================

func (s *WorkflowTestSuite) TestProcessTradeEvent_Success() {
	event := tradeEvent()
	result := &domain.TradeResult{
		TradeID: "t-1",
		Splits: []domain.Split{
			{BeneficiaryID: "trader", Level: domain.LevelCashback, Amount: decimal.RequireFromString("1"), Destination: domain.DestinationClaimable},
			{BeneficiaryID: domain.TREASURY_BENEFICIARY, Level: domain.LevelTreasury, Amount: decimal.RequireFromString("9"), Destination: domain.DestinationTreasury},
		},
	}

	s.env.OnActivity(s.executor.ProcessTrade, mock.Anything, event).Return(result, nil)

	s.env.ExecuteWorkflow(s.workerCore.ProcessTradeEvent, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var got domain.TradeResult
	s.NoError(s.env.GetWorkflowResult(&got))
	s.Equal("t-1", got.TradeID)
	s.Len(got.Splits, 2)
	s.False(got.Duplicate)
}

func (s *WorkflowTestSuite) TestProcessTradeEvent_Duplicate() {
	event := tradeEvent()

	s.env.OnActivity(s.executor.ProcessTrade, mock.Anything, event).
		Return(&domain.TradeResult{TradeID: "t-1", Duplicate: true}, nil)

	s.env.ExecuteWorkflow(s.workerCore.ProcessTradeEvent, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var got domain.TradeResult
	s.NoError(s.env.GetWorkflowResult(&got))
	s.True(got.Duplicate)
}

func (s *WorkflowTestSuite) TestProcessTradeEvent_InvalidTradeNotRetried() {
	event := tradeEvent()

	s.env.OnActivity(s.executor.ProcessTrade, mock.Anything, event).
		Return(nil, temporal.NewNonRetryableApplicationError("negative fee", workflows.ErrTypeInvalidTrade, domain.ErrNegativeFee)).
		Once()

	s.env.ExecuteWorkflow(s.workerCore.ProcessTradeEvent, event)

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)

	var appErr *temporal.ApplicationError
	s.True(errors.As(err, &appErr))
	s.Equal(workflows.ErrTypeInvalidTrade, appErr.Type())
}

func (s *WorkflowTestSuite) TestProcessTradeEvent_RetriesThenFails() {
	event := tradeEvent()

	s.env.OnActivity(s.executor.ProcessTrade, mock.Anything, event).
		Return(nil, errors.New("database unavailable")).
		Times(2)

	s.env.ExecuteWorkflow(s.workerCore.ProcessTradeEvent, event)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

// ====================================================================================
// GenerateMerkleRoot Tests
// ====================================================================================

func rootRecord(root string) *domain.RootRecord {
	return &domain.RootRecord{
		Chain:     domain.ChainEVM,
		Token:     "USDT",
		Root:      root,
		Version:   3,
		LeafCount: 2,
	}
}

const testRoot = "0x9c22ff5f21f0b81b113e63f7db6da94fedef11b2119b4088b89664fb9a3cb658"

func (s *WorkflowTestSuite) TestGenerateMerkleRoot_GeneratesAndPublishes() {
	record := rootRecord(testRoot)

	s.env.OnActivity(s.executor.GenerateRoot, mock.Anything, domain.ChainEVM, "USDT").Return(record, nil)
	s.env.OnActivity(s.executor.PublishRoot, mock.Anything, mock.MatchedBy(func(r *domain.RootRecord) bool {
		return r.Root == testRoot && r.Version == 3
	})).Return("0xtx", nil)

	s.env.ExecuteWorkflow(s.workerCore.GenerateMerkleRoot, domain.ChainEVM, "USDT")

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var got domain.RootRecord
	s.NoError(s.env.GetWorkflowResult(&got))
	s.Equal(uint64(3), got.Version)
	s.Equal(testRoot, got.Root)
}

func (s *WorkflowTestSuite) TestGenerateMerkleRoot_PublishFailureKeepsRoot() {
	record := rootRecord(testRoot)

	s.env.OnActivity(s.executor.GenerateRoot, mock.Anything, domain.ChainEVM, "USDT").Return(record, nil)
	s.env.OnActivity(s.executor.PublishRoot, mock.Anything, mock.Anything).
		Return("", temporal.NewNonRetryableApplicationError("unsupported", workflows.ErrTypeRootUpdateUnsupported, domain.ErrRootUpdateUnsupported)).
		Once()

	s.env.ExecuteWorkflow(s.workerCore.GenerateMerkleRoot, domain.ChainEVM, "USDT")

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var got domain.RootRecord
	s.NoError(s.env.GetWorkflowResult(&got))
	s.Equal(uint64(3), got.Version)
}

func (s *WorkflowTestSuite) TestGenerateMerkleRoot_ZeroRootNotPublished() {
	record := rootRecord(domain.ZERO_ROOT)
	record.LeafCount = 0

	s.env.OnActivity(s.executor.GenerateRoot, mock.Anything, domain.ChainEVM, "USDT").Return(record, nil)

	s.env.ExecuteWorkflow(s.workerCore.GenerateMerkleRoot, domain.ChainEVM, "USDT")

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WorkflowTestSuite) TestGenerateMerkleRoot_GenerateFailure() {
	s.env.OnActivity(s.executor.GenerateRoot, mock.Anything, domain.ChainEVM, "USDT").
		Return(nil, temporal.NewNonRetryableApplicationError("invalid", workflows.ErrTypeInvalidRootRequest, domain.ErrInvalidInput))

	s.env.ExecuteWorkflow(s.workerCore.GenerateMerkleRoot, domain.ChainEVM, "USDT")

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func TestWorkflowIDs(t *testing.T) {
	if got := workflows.TradeWorkflowID("abc"); got != "process-trade-abc" {
		t.Fatalf("unexpected trade workflow id %q", got)
	}
	if got := workflows.RootWorkflowID(domain.ChainSVM, "USDC", 42, 7); got != "generate-root-svm-USDC-42-7" {
		t.Fatalf("unexpected root workflow id %q", got)
	}
}
