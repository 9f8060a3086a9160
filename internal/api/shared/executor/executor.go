package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-referral/internal/api/shared/errors"
	"github.com/feral-file/ff-referral/internal/claim"
	"github.com/feral-file/ff-referral/internal/commitment"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/ledger"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/messaging"
	"github.com/feral-file/ff-referral/internal/providers/temporal"
	"github.com/feral-file/ff-referral/internal/referral"
	"github.com/feral-file/ff-referral/internal/workflows"
)

const (
	DEFAULT_LIMIT = 20
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ProcessTrade records a trade, or queues it on the trade subject when async is set
	ProcessTrade(ctx context.Context, req dto.TradeRequest, async bool) (*dto.TradeResponse, error)

	// RegisterReferral links the referee to a referrer given by id or referral code
	RegisterReferral(ctx context.Context, refereeID string, req dto.RegisterReferralRequest) (*dto.ReferralLinkResponse, error)

	// GetReferralCode returns the user's referral code, creating the user and the code on first call
	GetReferralCode(ctx context.Context, userID string) (*dto.ReferralCodeResponse, error)

	// GetNetwork returns the user's downline per level
	GetNetwork(ctx context.Context, userID string) (*dto.NetworkResponse, error)

	// GetEarnings returns the user's totals per token and level
	GetEarnings(ctx context.Context, userID string) (*dto.EarningsResponse, error)

	// GetTradeCommission returns what the user earned from one trade
	GetTradeCommission(ctx context.Context, userID, tradeID string) (*dto.TradeCommissionResponse, error)

	// ListTrades lists the trades of a user, newest first
	ListTrades(ctx context.Context, userID string, limit, offset int) (*dto.TradeListResponse, error)

	// GetUnclaimedBalances returns the claimable balances of a chain and token
	GetUnclaimedBalances(ctx context.Context, chain domain.Chain, token string) (*dto.BalanceListResponse, error)

	// GenerateRoot commits a new root, or starts the root workflow when async is set
	GenerateRoot(ctx context.Context, chain domain.Chain, token string, async bool) (*dto.RootResponse, error)

	// GetLatestRoot returns the last committed root
	GetLatestRoot(ctx context.Context, chain domain.Chain, token string) (*dto.RootResponse, error)

	// GetProof returns the user's inclusion proof over the current balances
	GetProof(ctx context.Context, userID string, chain domain.Chain, token string) (*dto.ProofResponse, error)

	// Claim verifies and records the user's claim, then announces it to the payout service
	Claim(ctx context.Context, userID string, chain domain.Chain, token string) (*domain.ClaimResult, error)
}

// Deps groups the services the executor delegates to.
// Publisher and Orchestrator are optional; the async paths are unavailable without them.
type Deps struct {
	Trades       ledger.Processor
	Balances     ledger.Aggregator
	Referrals    referral.Service
	Roots        commitment.Builder
	Claims       claim.Processor
	Publisher    messaging.Publisher
	Orchestrator temporal.TemporalOrchestrator
	Clock        adapter.Clock
}

type executor struct {
	deps                  Deps
	orchestratorTaskQueue string
}

func NewExecutor(deps Deps, orchestratorTaskQueue string) Executor {
	return &executor{deps: deps, orchestratorTaskQueue: orchestratorTaskQueue}
}

func (e *executor) ProcessTrade(ctx context.Context, req dto.TradeRequest, async bool) (*dto.TradeResponse, error) {
	input := req.ToTradeInput(e.deps.Clock.Now())

	// the synchronous path validates in the ledger, after a replayed trade id is recognized
	if async {
		if err := req.Validate(); err != nil {
			return nil, apierrors.FromDomainError("Invalid trade", err)
		}
		if e.deps.Publisher == nil {
			return nil, apierrors.NewUnavailableError("Asynchronous trade intake is not configured")
		}
		event := &domain.TradeEvent{TradeInput: input, PublishedAt: e.deps.Clock.Now()}
		if err := e.deps.Publisher.PublishTradeEvent(ctx, event); err != nil {
			return nil, apierrors.NewServiceError("Failed to queue trade", err.Error())
		}
		return &dto.TradeResponse{TradeID: input.TradeID, Queued: true}, nil
	}

	result, err := e.deps.Trades.ProcessTrade(ctx, input)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to process trade", err)
	}

	return &dto.TradeResponse{
		TradeID:   result.TradeID,
		Duplicate: result.Duplicate,
		Splits:    result.Splits,
	}, nil
}

func (e *executor) RegisterReferral(ctx context.Context, refereeID string, req dto.RegisterReferralRequest) (*dto.ReferralLinkResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apierrors.FromDomainError("Invalid referral", err)
	}

	var (
		link *domain.ReferralLink
		err  error
	)
	if req.ReferralCode != "" {
		link, err = e.deps.Referrals.RegisterByCode(ctx, refereeID, req.ReferralCode)
	} else {
		link, err = e.deps.Referrals.Register(ctx, refereeID, req.ReferrerID)
	}
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to register referral", err)
	}

	return &dto.ReferralLinkResponse{
		RefereeID:  link.RefereeID,
		ReferrerID: link.ReferrerID,
		Level:      link.Level,
		CreatedAt:  link.CreatedAt,
	}, nil
}

func (e *executor) GetReferralCode(ctx context.Context, userID string) (*dto.ReferralCodeResponse, error) {
	code, err := e.deps.Referrals.GetOrCreateReferralCode(ctx, userID)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to get referral code", err)
	}
	return &dto.ReferralCodeResponse{UserID: userID, Code: code}, nil
}

func (e *executor) GetNetwork(ctx context.Context, userID string) (*dto.NetworkResponse, error) {
	network, err := e.deps.Referrals.GetNetwork(ctx, userID)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to get network", err)
	}
	return dto.MapNetwork(network), nil
}

func (e *executor) GetEarnings(ctx context.Context, userID string) (*dto.EarningsResponse, error) {
	earnings, err := e.deps.Trades.GetEarnings(ctx, userID)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to get earnings", err)
	}
	if earnings == nil {
		earnings = []domain.Earning{}
	}
	return &dto.EarningsResponse{UserID: userID, Earnings: earnings}, nil
}

func (e *executor) GetTradeCommission(ctx context.Context, userID, tradeID string) (*dto.TradeCommissionResponse, error) {
	amount, err := e.deps.Trades.GetTradeCommission(ctx, userID, tradeID)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to get trade commission", err)
	}
	return &dto.TradeCommissionResponse{UserID: userID, TradeID: tradeID, Amount: amount}, nil
}

func (e *executor) ListTrades(ctx context.Context, userID string, limit, offset int) (*dto.TradeListResponse, error) {
	if limit <= 0 {
		limit = DEFAULT_LIMIT
	}
	trades, err := e.deps.Trades.ListTrades(ctx, userID, limit, offset)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to list trades", err)
	}
	return &dto.TradeListResponse{Trades: dto.MapTrades(trades), Limit: limit, Offset: offset}, nil
}

func (e *executor) GetUnclaimedBalances(ctx context.Context, chain domain.Chain, token string) (*dto.BalanceListResponse, error) {
	balances, err := e.deps.Balances.GetUnclaimedBalances(ctx, chain, token)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to get balances", err)
	}

	resp := &dto.BalanceListResponse{Chain: chain, Token: token, Balances: balances}
	if resp.Balances == nil {
		resp.Balances = []domain.Balance{}
	}
	for _, b := range balances {
		resp.Total = resp.Total.Add(b.Amount)
	}
	return resp, nil
}

func (e *executor) GenerateRoot(ctx context.Context, chain domain.Chain, token string, async bool) (*dto.RootResponse, error) {
	if !async {
		record, err := e.deps.Roots.GenerateAndStoreRoot(ctx, chain, token)
		if err != nil {
			return nil, apierrors.FromDomainError("Failed to generate root", err)
		}
		return dto.MapRootRecord(record), nil
	}

	if e.deps.Orchestrator == nil {
		return nil, apierrors.NewUnavailableError("Root workflows are not configured")
	}

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	opts := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("api-generate-root-%s-%s-%s", chain, token, uuid.New().String()),
		TaskQueue: e.orchestratorTaskQueue,
	}
	run, err := e.deps.Orchestrator.ExecuteWorkflow(ctx, opts, w.GenerateMerkleRoot, chain, token)
	if err != nil {
		return nil, apierrors.NewServiceError("Failed to start root workflow", err.Error())
	}

	return &dto.RootResponse{
		Chain:      chain,
		Token:      token,
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	}, nil
}

func (e *executor) GetLatestRoot(ctx context.Context, chain domain.Chain, token string) (*dto.RootResponse, error) {
	record, err := e.deps.Roots.GetLatestRoot(ctx, chain, token)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to get latest root", err)
	}
	if record == nil {
		return nil, apierrors.FromDomainError("Root not found", domain.ErrNoRootGenerated)
	}
	return dto.MapRootRecord(record), nil
}

func (e *executor) GetProof(ctx context.Context, userID string, chain domain.Chain, token string) (*dto.ProofResponse, error) {
	proof, err := e.deps.Roots.GetProof(ctx, userID, chain, token)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to get proof", err)
	}

	resp := &dto.ProofResponse{Proof: proof, Chain: chain}

	record, err := e.deps.Roots.GetLatestRoot(ctx, chain, token)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to get latest root", err)
	}
	if record != nil {
		resp.LatestRoot = dto.MapRootRecord(record)
	}

	return resp, nil
}

func (e *executor) Claim(ctx context.Context, userID string, chain domain.Chain, token string) (*domain.ClaimResult, error) {
	result, err := e.deps.Claims.Claim(ctx, userID, chain, token)
	if err != nil {
		return nil, apierrors.FromDomainError("Failed to claim", err)
	}

	if e.deps.Publisher != nil {
		event := &domain.ClaimEvent{ClaimResult: *result}
		if err := e.deps.Publisher.PublishClaimEvent(ctx, event); err != nil {
			// the claim is recorded; payout reconciles from the claims table
			logger.ErrorCtx(ctx, errors.Join(errors.New("failed to publish claim event"), err),
				zap.String("userID", userID),
				zap.String("chain", string(chain)),
				zap.String("token", token),
				zap.Uint64("version", result.MerkleVersion))
		}
	}

	return result, nil
}
