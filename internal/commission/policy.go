package commission

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-referral/internal/domain"
)

//go:generate mockgen -source=policy.go -destination=../mocks/commission_policy.go -package=mocks -mock_names=Policy=MockCommissionPolicy

// DefaultUplineRates are the level 1..3 rates of the standard policy
var DefaultUplineRates = []decimal.Decimal{
	decimal.RequireFromString("0.30"),
	decimal.RequireFromString("0.03"),
	decimal.RequireFromString("0.02"),
}

// Policy splits a trade fee into cashback, upline commissions and the treasury remainder
type Policy interface {
	// CalculateSplits returns the non-zero splits of fee.
	// ancestors are ordered nearest first; the treasury split absorbs whatever is left.
	CalculateSplits(traderID string, fee, cashbackRate decimal.Decimal, ancestors []string) ([]domain.Split, error)
}

// FixedRatePolicy pays a fixed rate per upline level
type FixedRatePolicy struct {
	uplineRates []decimal.Decimal
}

// NewFixedRatePolicy creates a policy from per-level rates.
// The rates must be non-negative, at most MAX_REFERRAL_DEPTH long and sum to at most 1.
func NewFixedRatePolicy(uplineRates []decimal.Decimal) (*FixedRatePolicy, error) {
	if len(uplineRates) > domain.MAX_REFERRAL_DEPTH {
		return nil, fmt.Errorf("too many upline rates: %d", len(uplineRates))
	}

	total := decimal.Zero
	for i, r := range uplineRates {
		if r.IsNegative() {
			return nil, fmt.Errorf("negative upline rate at level %d", i+1)
		}
		total = total.Add(r)
	}
	if total.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: upline rates sum to %s", domain.ErrSplitOverflow, total.String())
	}

	rates := make([]decimal.Decimal, len(uplineRates))
	copy(rates, uplineRates)
	return &FixedRatePolicy{uplineRates: rates}, nil
}

// NewDefaultPolicy returns the standard 30% / 3% / 2% policy
func NewDefaultPolicy() *FixedRatePolicy {
	p, _ := NewFixedRatePolicy(DefaultUplineRates)
	return p
}

// NewPolicyFromRates builds a policy from float rates, falling back to the defaults when none are given
func NewPolicyFromRates(rates []float64) (Policy, error) {
	if len(rates) == 0 {
		return NewDefaultPolicy(), nil
	}
	converted := make([]decimal.Decimal, len(rates))
	for i, r := range rates {
		converted[i] = decimal.NewFromFloat(r)
	}
	return NewFixedRatePolicy(converted)
}

// UplineRates returns a copy of the configured rates
func (p *FixedRatePolicy) UplineRates() []decimal.Decimal {
	rates := make([]decimal.Decimal, len(p.uplineRates))
	copy(rates, p.uplineRates)
	return rates
}

func (p *FixedRatePolicy) CalculateSplits(traderID string, fee, cashbackRate decimal.Decimal, ancestors []string) ([]domain.Split, error) {
	if fee.IsNegative() {
		return nil, domain.ErrNegativeFee
	}
	if cashbackRate.IsNegative() || cashbackRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCashbackRate, cashbackRate.String())
	}

	fee = domain.RoundAmount(fee)

	var splits []domain.Split
	distributed := decimal.Zero

	emit := func(beneficiaryID string, level domain.Level, rate decimal.Decimal, destination domain.Destination) {
		// rounding toward zero keeps the sum of splits within the fee
		amount := fee.Mul(rate).RoundDown(domain.AMOUNT_DECIMALS)
		if !amount.IsPositive() {
			return
		}
		distributed = distributed.Add(amount)
		splits = append(splits, domain.Split{
			BeneficiaryID: beneficiaryID,
			Level:         level,
			Rate:          rate,
			Amount:        amount,
			Destination:   destination,
		})
	}

	emit(traderID, domain.LevelCashback, cashbackRate, domain.DestinationClaimable)

	for i, rate := range p.uplineRates {
		// the chain stops at the first missing ancestor
		if i >= len(ancestors) || ancestors[i] == "" {
			break
		}
		emit(ancestors[i], domain.Level(i+1), rate, domain.DestinationClaimable)
	}

	if distributed.GreaterThan(fee) {
		return nil, fmt.Errorf("%w: distributed %s of fee %s", domain.ErrSplitOverflow,
			distributed.StringFixed(domain.AMOUNT_DECIMALS), fee.StringFixed(domain.AMOUNT_DECIMALS))
	}

	treasury := fee.Sub(distributed)
	if treasury.IsPositive() {
		splits = append(splits, domain.Split{
			BeneficiaryID: domain.TREASURY_BENEFICIARY,
			Level:         domain.LevelTreasury,
			Rate:          treasury.DivRound(fee, domain.AMOUNT_DECIMALS),
			Amount:        treasury,
			Destination:   domain.DestinationTreasury,
		})
	}

	return splits, nil
}
