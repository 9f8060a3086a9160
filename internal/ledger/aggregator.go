package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/store"
)

//go:generate mockgen -source=aggregator.go -destination=../mocks/balance_aggregator.go -package=mocks -mock_names=Aggregator=MockBalanceAggregator

// Aggregator computes unclaimed balances from the ledger and the claims
type Aggregator interface {
	// GetUnclaimedBalances returns every beneficiary with a positive unclaimed amount, sorted by id
	GetUnclaimedBalances(ctx context.Context, chain domain.Chain, token string) ([]domain.Balance, error)
}

type aggregator struct {
	store store.Store
}

// NewAggregator creates a new claimable balance aggregator
func NewAggregator(s store.Store) Aggregator {
	return &aggregator{store: s}
}

func (a *aggregator) GetUnclaimedBalances(ctx context.Context, chain domain.Chain, token string) ([]domain.Balance, error) {
	if !domain.IsValidChain(chain) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidChain, chain)
	}

	earned, err := a.store.SumClaimableByBeneficiary(ctx, chain, token)
	if err != nil {
		return nil, fmt.Errorf("failed to sum earned: %w", err)
	}

	claimed, err := a.store.SumClaimedByBeneficiary(ctx, chain, token)
	if err != nil {
		return nil, fmt.Errorf("failed to sum claimed: %w", err)
	}

	balances := make([]domain.Balance, 0, len(earned))
	for beneficiaryID, amount := range earned {
		unclaimed := amount
		if c, ok := claimed[beneficiaryID]; ok {
			unclaimed = unclaimed.Sub(c)
		}
		if !unclaimed.IsPositive() {
			continue
		}
		balances = append(balances, domain.Balance{
			BeneficiaryID: beneficiaryID,
			Amount:        domain.RoundAmount(unclaimed),
		})
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].BeneficiaryID < balances[j].BeneficiaryID
	})

	return balances, nil
}
