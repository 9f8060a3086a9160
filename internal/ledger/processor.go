package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/commission"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/store"
	"github.com/feral-file/ff-referral/internal/store/schema"
)

//go:generate mockgen -source=processor.go -destination=../mocks/trade_processor.go -package=mocks -mock_names=Processor=MockTradeProcessor

// Processor turns trades into commission ledger entries exactly once
type Processor interface {
	// ProcessTrade splits the trade fee and appends the ledger entries.
	// A trade that was already processed returns a result with Duplicate set and no error.
	ProcessTrade(ctx context.Context, input domain.TradeInput) (*domain.TradeResult, error)
	// GetEarnings returns the user's totals per token and level
	GetEarnings(ctx context.Context, userID string) ([]domain.Earning, error)
	// GetTradeCommission returns what the user earned from one trade
	GetTradeCommission(ctx context.Context, userID, tradeID string) (decimal.Decimal, error)
	// ListTrades lists the trades of a user, newest first
	ListTrades(ctx context.Context, userID string, limit, offset int) ([]schema.Trade, error)
}

type processor struct {
	store               store.Store
	policy              commission.Policy
	validate            *validator.Validate
	defaultCashbackRate decimal.Decimal
}

// NewProcessor creates a new trade ledger processor
func NewProcessor(s store.Store, policy commission.Policy, defaultCashbackRate decimal.Decimal) Processor {
	return &processor{
		store:               s,
		policy:              policy,
		validate:            validator.New(),
		defaultCashbackRate: defaultCashbackRate,
	}
}

// ProcessTrade splits the fee of a trade and appends the splits to the ledger.
// A replayed trade id is reported as a duplicate before the payload is validated.
func (p *processor) ProcessTrade(ctx context.Context, input domain.TradeInput) (*domain.TradeResult, error) {
	if input.TradeID == "" {
		return nil, fmt.Errorf("%w: trade id is required", domain.ErrInvalidInput)
	}

	// 1. Fast path for replays
	key := domain.IdempotencyKeyForTrade(input.TradeID)
	exists, err := p.store.IdempotencyKeyExists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	}
	if exists {
		logger.InfoCtx(ctx, "Trade already processed", zap.String("tradeID", input.TradeID))
		return &domain.TradeResult{TradeID: input.TradeID, Duplicate: true}, nil
	}

	// 2. Validate the payload of a new trade
	if err := p.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if !domain.IsValidChain(input.Chain) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidChain, input.Chain)
	}
	if input.FeeAmount.IsNegative() {
		return nil, domain.ErrNegativeFee
	}

	// 3. Cashback rate and upline; a first-time trader is created with the default rate
	cashbackRate, err := p.store.GetCashbackRate(ctx, input.UserID, p.defaultCashbackRate)
	if err != nil {
		return nil, fmt.Errorf("failed to get cashback rate: %w", err)
	}

	ancestors, err := p.store.GetAncestors(ctx, input.UserID, domain.MAX_REFERRAL_DEPTH)
	if err != nil {
		return nil, fmt.Errorf("failed to get ancestors: %w", err)
	}

	// 4. Split the fee
	splits, err := p.policy.CalculateSplits(input.UserID, input.FeeAmount, cashbackRate, ancestors)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate splits: %w", err)
	}

	// 5. Append atomically; the key insert inside the transaction settles concurrent submissions
	tradedAt := input.Timestamp
	if tradedAt.IsZero() {
		tradedAt = time.Now().UTC()
	}

	entries := make([]schema.CommissionLedgerEntry, 0, len(splits))
	for _, s := range splits {
		entries = append(entries, schema.CommissionLedgerEntry{
			BeneficiaryID: s.BeneficiaryID,
			SourceTradeID: input.TradeID,
			Level:         s.Level,
			Rate:          s.Rate,
			Amount:        s.Amount,
			Token:         input.Token,
			Destination:   s.Destination,
		})
	}

	applied, err := p.store.ApplyTrade(ctx, store.ApplyTradeInput{
		IdempotencyKey: key,
		Trade: schema.Trade{
			ID:        input.TradeID,
			UserID:    input.UserID,
			FeeAmount: domain.RoundAmount(input.FeeAmount),
			Token:     input.Token,
			Chain:     input.Chain,
			TradedAt:  tradedAt,
		},
		Entries:             entries,
		DefaultCashbackRate: p.defaultCashbackRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply trade: %w", err)
	}
	if !applied {
		logger.InfoCtx(ctx, "Trade processed concurrently", zap.String("tradeID", input.TradeID))
		return &domain.TradeResult{TradeID: input.TradeID, Duplicate: true}, nil
	}

	logger.InfoCtx(ctx, "Trade processed",
		zap.String("tradeID", input.TradeID),
		zap.String("userID", input.UserID),
		zap.String("chain", string(input.Chain)),
		zap.String("token", input.Token),
		zap.String("fee", input.FeeAmount.StringFixed(domain.AMOUNT_DECIMALS)),
		zap.Int("splits", len(splits)))

	return &domain.TradeResult{TradeID: input.TradeID, Splits: splits}, nil
}

func (p *processor) GetEarnings(ctx context.Context, userID string) ([]domain.Earning, error) {
	earnings, err := p.store.SumByBeneficiaryAndLevel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get earnings: %w", err)
	}
	return earnings, nil
}

func (p *processor) GetTradeCommission(ctx context.Context, userID, tradeID string) (decimal.Decimal, error) {
	total, err := p.store.SumByBeneficiaryAndSourceTrade(ctx, userID, tradeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get trade commission: %w", err)
	}
	return total, nil
}

func (p *processor) ListTrades(ctx context.Context, userID string, limit, offset int) ([]schema.Trade, error) {
	trades, err := p.store.ListTradesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}
