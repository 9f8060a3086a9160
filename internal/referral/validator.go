package referral

import (
	"context"
	"fmt"
	"slices"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/store"
)

// Validator checks that a new referral link keeps the tree acyclic and at most three levels deep
type Validator struct {
	store store.ReferralStore
}

// NewValidator creates a new referral graph validator
func NewValidator(s store.ReferralStore) *Validator {
	return &Validator{store: s}
}

// ComputeLevel returns the level the referee would take under referrer, or the reason the link is rejected.
// It never writes.
func (v *Validator) ComputeLevel(ctx context.Context, refereeID, referrerID string) (int, error) {
	if refereeID == referrerID {
		return 0, domain.ErrSelfReferral
	}

	existing, err := v.store.GetReferrer(ctx, refereeID)
	if err != nil {
		return 0, fmt.Errorf("failed to get referrer: %w", err)
	}
	if existing != nil {
		return 0, domain.ErrReferrerAlreadySet
	}

	ancestors, err := v.store.GetAncestors(ctx, referrerID, domain.ANCESTOR_SCAN_LIMIT)
	if err != nil {
		return 0, fmt.Errorf("failed to get ancestors: %w", err)
	}
	if slices.Contains(ancestors, refereeID) {
		return 0, domain.ErrCycleDetected
	}

	level := len(ancestors) + 1
	if level > domain.MAX_REFERRAL_DEPTH {
		return 0, fmt.Errorf("%w: level %d", domain.ErrDepthExceeded, level)
	}

	return level, nil
}
