package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Chain represents the settlement chain family of a trade
type Chain string

const (
	ChainEVM Chain = "evm"
	ChainSVM Chain = "svm"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainEVM || chain == ChainSVM
}

// ParseChain parses a chain from its string form
func ParseChain(s string) (Chain, error) {
	chain := Chain(strings.ToLower(strings.TrimSpace(s)))
	if !IsValidChain(chain) {
		return "", fmt.Errorf("%w: %s", ErrInvalidChain, s)
	}
	return chain, nil
}

// Level is the position of a beneficiary relative to the trader.
// -1 is the treasury, 0 the trader's own cashback and 1..3 the upline.
type Level int

const (
	LevelTreasury Level = -1
	LevelCashback Level = 0
)

// Destination tells whether a ledger entry can be claimed by its beneficiary
type Destination string

const (
	DestinationClaimable Destination = "claimable"
	DestinationTreasury  Destination = "treasury"
)

// Split is one beneficiary's share of a trade fee
type Split struct {
	BeneficiaryID string          `json:"beneficiary_id"`
	Level         Level           `json:"level"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	Destination   Destination     `json:"destination"`
}

// TradeInput is a fee-bearing trade submitted for commission processing
type TradeInput struct {
	TradeID   string          `json:"trade_id" validate:"required,max=255"`
	UserID    string          `json:"user_id" validate:"required,max=255"`
	FeeAmount decimal.Decimal `json:"fee_amount"`
	Token     string          `json:"token" validate:"required,max=64"`
	Chain     Chain           `json:"chain" validate:"required,oneof=evm svm"`
	Timestamp time.Time       `json:"timestamp"`
}

// TradeEvent is the message published on the trade subjects
type TradeEvent struct {
	TradeInput
	PublishedAt time.Time `json:"published_at"`
}

// TradeResult is the outcome of processing a trade
type TradeResult struct {
	TradeID   string  `json:"trade_id"`
	Duplicate bool    `json:"duplicate"`
	Splits    []Split `json:"splits"`
}

// IdempotencyKeyForTrade returns the idempotency key of a trade
func IdempotencyKeyForTrade(tradeID string) string {
	return fmt.Sprintf(TRADE_IDEMPOTENCY_KEY, tradeID)
}

// RootCursorKey returns the key of the last ledger entry committed into a root for a chain and token
func RootCursorKey(chain Chain, token string) string {
	return fmt.Sprintf(ROOT_CURSOR_KEY, chain, token)
}

// RootClaimCursorKey returns the key of the last claim reflected in a root for a chain and token
func RootClaimCursorKey(chain Chain, token string) string {
	return fmt.Sprintf(ROOT_CLAIM_CURSOR_KEY, chain, token)
}

// Market is a chain and token pair that roots are committed for
type Market struct {
	Chain Chain  `mapstructure:"chain" json:"chain"`
	Token string `mapstructure:"token" json:"token"`
}

func (m Market) String() string {
	return string(m.Chain) + ":" + m.Token
}

// ReferralLink is a directed referrer -> referee edge
type ReferralLink struct {
	RefereeID  string    `json:"referee_id"`
	ReferrerID string    `json:"referrer_id"`
	Level      int       `json:"level"`
	CreatedAt  time.Time `json:"created_at"`
}

// Network is the downline of a user grouped by level
type Network struct {
	UserID     string             `json:"user_id"`
	ReferrerID *string            `json:"referrer_id"`
	Levels     map[Level][]string `json:"levels"`
	Counts     map[Level]int      `json:"counts"`
}

// Balance is an unclaimed amount owed to a beneficiary for one chain and token
type Balance struct {
	BeneficiaryID string          `json:"beneficiary_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// Earning is a beneficiary's total for one token at one level
type Earning struct {
	Token  string          `json:"token"`
	Level  Level           `json:"level"`
	Amount decimal.Decimal `json:"amount"`
}

// RootRecord is a committed Merkle root for one chain and token
type RootRecord struct {
	Chain     Chain     `json:"chain"`
	Token     string    `json:"token"`
	Root      string    `json:"root"`
	Version   uint64    `json:"version"`
	LeafCount int       `json:"leaf_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ClaimResult is the outcome of a successful claim
type ClaimResult struct {
	UserID        string          `json:"user_id"`
	Chain         Chain           `json:"chain"`
	Token         string          `json:"token"`
	Amount        decimal.Decimal `json:"amount"`
	MerkleVersion uint64          `json:"merkle_version"`
	Root          string          `json:"root"`
	Proof         []string        `json:"proof"`
	TxHash        *string         `json:"tx_hash"`
	ClaimedAt     time.Time       `json:"claimed_at"`
}

// ClaimEvent is published after a claim is recorded so payouts can be settled
type ClaimEvent struct {
	ClaimResult
	EventID string `json:"event_id"`
}

// RoundAmount rounds an amount to the ledger precision
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AMOUNT_DECIMALS)
}
