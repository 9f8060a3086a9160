package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// UserStore defines user lookups and creation
type UserStore interface {
	// GetUser retrieves a user by id, nil if not found
	GetUser(ctx context.Context, userID string) (*schema.User, error)
	// EnsureUser creates the user with the given cashback rate if missing and returns the stored row
	EnsureUser(ctx context.Context, userID string, cashbackRate decimal.Decimal) (*schema.User, error)
	// GetCashbackRate returns the cashback rate of a user, fallback if the user is unknown
	GetCashbackRate(ctx context.Context, userID string, fallback decimal.Decimal) (decimal.Decimal, error)
	// GetUserByReferralCode retrieves the owner of a referral code, nil if not found
	GetUserByReferralCode(ctx context.Context, code string) (*schema.User, error)
	// SetReferralCode assigns a code to a user that has none.
	// Returns false when the code is already taken by another user.
	SetReferralCode(ctx context.Context, userID string, code string) (bool, error)
}

// ReferralStore defines referral tree operations
type ReferralStore interface {
	// GetReferrer returns the referrer of a user, nil if none
	GetReferrer(ctx context.Context, userID string) (*string, error)
	// GetAncestors returns up to maxLevels ancestors, nearest first
	GetAncestors(ctx context.Context, userID string, maxLevels int) ([]string, error)
	// GetDirectReferees returns the users directly referred by any of the given users
	GetDirectReferees(ctx context.Context, userIDs []string) ([]schema.ReferralLink, error)
	// CreateReferralLink stores a link, failing with domain.ErrReferrerAlreadySet if the referee already has one
	CreateReferralLink(ctx context.Context, input CreateReferralLinkInput) (*schema.ReferralLink, error)
}

// LedgerStore defines commission ledger reads
type LedgerStore interface {
	// SumClaimableByBeneficiary sums claimable entries whose source trade is on chain, per beneficiary
	SumClaimableByBeneficiary(ctx context.Context, chain domain.Chain, token string) (map[string]decimal.Decimal, error)
	// SumByBeneficiaryAndLevel sums all entries of a beneficiary per token and level
	SumByBeneficiaryAndLevel(ctx context.Context, beneficiaryID string) ([]domain.Earning, error)
	// SumByBeneficiaryAndSourceTrade sums the entries of a beneficiary for one trade
	SumByBeneficiaryAndSourceTrade(ctx context.Context, beneficiaryID string, tradeID string) (decimal.Decimal, error)
	// GetEntriesByTrade returns all entries produced by a trade
	GetEntriesByTrade(ctx context.Context, tradeID string) ([]schema.CommissionLedgerEntry, error)
	// GetLatestEntryID returns the highest ledger entry id for a chain and token, 0 if none
	GetLatestEntryID(ctx context.Context, chain domain.Chain, token string) (uint64, error)
}

// IdempotencyStore defines idempotency key checks
type IdempotencyStore interface {
	// IdempotencyKeyExists reports whether the key was consumed
	IdempotencyKeyExists(ctx context.Context, key string) (bool, error)
}

// TradeStore defines trade lookups and the atomic trade append
type TradeStore interface {
	// GetTrade retrieves a trade by id, nil if not found
	GetTrade(ctx context.Context, tradeID string) (*schema.Trade, error)
	// ListTradesByUser lists the trades of a user, newest first
	ListTradesByUser(ctx context.Context, userID string, limit int, offset int) ([]schema.Trade, error)
	// ApplyTrade consumes the idempotency key, records the trade and appends its ledger entries atomically.
	// Returns false without writing anything when the key was already consumed.
	ApplyTrade(ctx context.Context, input ApplyTradeInput) (bool, error)
}

// RootStore defines Merkle root persistence
type RootStore interface {
	// GetLatestRoot returns the highest version root, nil if none
	GetLatestRoot(ctx context.Context, chain domain.Chain, token string) (*schema.MerkleRoot, error)
	// GetRootByVersion returns a specific root version, nil if not found
	GetRootByVersion(ctx context.Context, chain domain.Chain, token string, version uint64) (*schema.MerkleRoot, error)
	// AppendRoot stores the next root version.
	// Returns ErrVersionConflict when another writer took the version first.
	AppendRoot(ctx context.Context, input AppendRootInput) (*schema.MerkleRoot, error)
}

// ClaimStore defines claim persistence
type ClaimStore interface {
	// GetClaim returns the claim of a user at a root version, nil if none
	GetClaim(ctx context.Context, userID string, chain domain.Chain, token string, version uint64) (*schema.Claim, error)
	// SumClaimedByBeneficiary sums claims per user for a chain and token
	SumClaimedByBeneficiary(ctx context.Context, chain domain.Chain, token string) (map[string]decimal.Decimal, error)
	// CreateClaim records a claim at the latest root version.
	// Fails with domain.ErrAlreadyClaimed on a duplicate, domain.ErrStaleRootVersion when a newer root exists
	// and domain.ErrClaimExceedsBalance when the amount is more than the user's unclaimed balance.
	CreateClaim(ctx context.Context, input CreateClaimInput) (*schema.Claim, error)
	// GetLatestClaimID returns the highest claim id for a chain and token, 0 if none
	GetLatestClaimID(ctx context.Context, chain domain.Chain, token string) (uint64, error)
	// SetClaimTxHash records the payout transaction of a claim
	SetClaimTxHash(ctx context.Context, claimID uint64, txHash string) error
}

// CursorStore defines processing cursors kept in the key-value store
type CursorStore interface {
	// GetCursor returns the cursor value for a key, 0 if none
	GetCursor(ctx context.Context, key string) (uint64, error)
	// SetCursor stores the cursor value for a key
	SetCursor(ctx context.Context, key string, value uint64) error
}

// Store defines the interface for database operations
type Store interface {
	UserStore
	ReferralStore
	LedgerStore
	IdempotencyStore
	TradeStore
	RootStore
	ClaimStore
	CursorStore
}

// CreateReferralLinkInput represents the input for creating a referral link
type CreateReferralLinkInput struct {
	RefereeID           string
	ReferrerID          string
	Level               int
	DefaultCashbackRate decimal.Decimal
}

// ApplyTradeInput represents the input for appending a processed trade
type ApplyTradeInput struct {
	IdempotencyKey      string
	Trade               schema.Trade
	Entries             []schema.CommissionLedgerEntry
	DefaultCashbackRate decimal.Decimal
}

// AppendRootInput represents the input for storing a new root version
type AppendRootInput struct {
	Chain     domain.Chain
	Token     string
	Root      string
	LeafCount int
	Leaves    []domain.Balance
}

// CreateClaimInput represents the input for recording a claim
type CreateClaimInput struct {
	UserID        string
	Chain         domain.Chain
	Token         string
	MerkleVersion uint64
	Amount        decimal.Decimal
}
