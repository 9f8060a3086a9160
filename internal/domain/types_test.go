package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Chain
		wantErr  bool
	}{
		{name: "evm", input: "evm", expected: ChainEVM},
		{name: "svm upper case", input: "SVM", expected: ChainSVM},
		{name: "padded", input: " evm ", expected: ChainEVM},
		{name: "unknown", input: "tezos", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, err := ParseChain(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidChain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, chain)
		})
	}
}

func TestIdempotencyKeyForTrade(t *testing.T) {
	assert.Equal(t, "trade:t-1", IdempotencyKeyForTrade("t-1"))
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, "0.12345679", RoundAmount(decimal.RequireFromString("0.123456789")).StringFixed(AMOUNT_DECIMALS))
	assert.Equal(t, "3.00000000", RoundAmount(decimal.NewFromInt(3)).StringFixed(AMOUNT_DECIMALS))
}

func TestProofVerificationError(t *testing.T) {
	cause := errors.New("rpc timeout")
	err := &ProofVerificationError{
		UserID:       "alice",
		Chain:        ChainEVM,
		Token:        "USDT",
		Amount:       decimal.NewFromInt(3),
		Version:      2,
		OnChainRoot:  "0xaa",
		DatabaseRoot: "0xbb",
		Cause:        cause,
	}

	wrapped := fmt.Errorf("claim failed: %w", err)
	assert.ErrorIs(t, wrapped, ErrProofVerificationFailed)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, err.Error(), "onchain_root=0xaa")
	assert.Contains(t, err.Error(), "amount=3.00000000")

	var pve *ProofVerificationError
	require.True(t, errors.As(wrapped, &pve))
	assert.Equal(t, uint64(2), pve.Version)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsValidationError(fmt.Errorf("x: %w", ErrSelfReferral)))
	assert.True(t, IsValidationError(ErrDepthExceeded))
	assert.False(t, IsValidationError(ErrAlreadyClaimed))

	assert.True(t, IsStateConflict(fmt.Errorf("x: %w", ErrAlreadyClaimed)))
	assert.True(t, IsStateConflict(ErrNoClaimableBalance))
	assert.True(t, IsStateConflict(ErrStaleRootVersion))
	assert.True(t, IsStateConflict(ErrClaimExceedsBalance))
	assert.False(t, IsStateConflict(ErrProofVerificationFailed))
}
