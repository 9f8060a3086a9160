package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInput is returned when a request fails field validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrSelfReferral is returned when a user tries to refer themselves
	ErrSelfReferral = errors.New("self referral")

	// ErrReferrerAlreadySet is returned when the referee already has a referrer
	ErrReferrerAlreadySet = errors.New("referrer already set")

	// ErrCycleDetected is returned when a new link would close a cycle in the referral tree
	ErrCycleDetected = errors.New("referral cycle detected")

	// ErrDepthExceeded is returned when a new link would place the referee deeper than the maximum level
	ErrDepthExceeded = errors.New("referral depth exceeded")

	// ErrReferralCodeNotFound is returned when a referral code does not resolve to a user
	ErrReferralCodeNotFound = errors.New("referral code not found")

	// ErrNegativeFee is returned when a trade carries a negative fee
	ErrNegativeFee = errors.New("negative fee")

	// ErrInvalidCashbackRate is returned when a cashback rate is outside [0, 1]
	ErrInvalidCashbackRate = errors.New("invalid cashback rate")

	// ErrSplitOverflow is returned when the computed splits would exceed the trade fee
	ErrSplitOverflow = errors.New("commission splits exceed fee")

	// ErrInvalidChain is returned when a chain is not supported
	ErrInvalidChain = errors.New("invalid chain")

	// ErrNoRootGenerated is returned when no Merkle root exists for a chain and token
	ErrNoRootGenerated = errors.New("no merkle root generated")

	// ErrAlreadyClaimed is returned when the user already claimed at the current root version
	ErrAlreadyClaimed = errors.New("already claimed")

	// ErrStaleRootVersion is returned when a claim targets a root version that is no longer the latest
	ErrStaleRootVersion = errors.New("stale root version")

	// ErrClaimExceedsBalance is returned when a claim would take more than the unclaimed balance
	ErrClaimExceedsBalance = errors.New("claim exceeds unclaimed balance")

	// ErrNoClaimableBalance is returned when the user has nothing to claim
	ErrNoClaimableBalance = errors.New("no claimable balance")

	// ErrRootNotSetOnChain is returned when the on-chain root is still the zero sentinel
	ErrRootNotSetOnChain = errors.New("root not set on chain")

	// ErrProofVerificationFailed is returned when the on-chain verifier rejects a proof or cannot be reached
	ErrProofVerificationFailed = errors.New("proof verification failed")

	// ErrRootUpdateUnsupported is returned when a chain client cannot push roots
	ErrRootUpdateUnsupported = errors.New("root update unsupported")
)

// ProofVerificationError carries the diagnostics of a failed on-chain verification
type ProofVerificationError struct {
	UserID       string
	Chain        Chain
	Token        string
	Amount       decimal.Decimal
	Version      uint64
	OnChainRoot  string
	DatabaseRoot string
	LocalRoot    string
	Cause        error
}

func (e *ProofVerificationError) Error() string {
	msg := fmt.Sprintf("%s: user=%s chain=%s token=%s amount=%s version=%d onchain_root=%s db_root=%s local_root=%s",
		ErrProofVerificationFailed.Error(), e.UserID, e.Chain, e.Token,
		e.Amount.StringFixed(AMOUNT_DECIMALS), e.Version, e.OnChainRoot, e.DatabaseRoot, e.LocalRoot)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ProofVerificationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrProofVerificationFailed, e.Cause}
	}
	return []error{ErrProofVerificationFailed}
}

// IsValidationError reports whether err is a client input error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrSelfReferral) ||
		errors.Is(err, ErrCycleDetected) ||
		errors.Is(err, ErrDepthExceeded) ||
		errors.Is(err, ErrNegativeFee) ||
		errors.Is(err, ErrInvalidCashbackRate) ||
		errors.Is(err, ErrInvalidChain)
}

// IsStateConflict reports whether err is an expected state conflict rather than a fault
func IsStateConflict(err error) bool {
	return errors.Is(err, ErrReferrerAlreadySet) ||
		errors.Is(err, ErrAlreadyClaimed) ||
		errors.Is(err, ErrStaleRootVersion) ||
		errors.Is(err, ErrClaimExceedsBalance) ||
		errors.Is(err, ErrNoClaimableBalance) ||
		errors.Is(err, ErrNoRootGenerated) ||
		errors.Is(err, ErrRootNotSetOnChain) ||
		errors.Is(err, ErrReferralCodeNotFound)
}
