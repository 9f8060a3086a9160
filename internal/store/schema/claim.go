package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-referral/internal/domain"
)

// Claim represents the claims table - at most one claim per user, chain, token and root version
type Claim struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID is the claimant
	UserID string `gorm:"column:user_id;not null;type:varchar(255);uniqueIndex:idx_claims_user_chain_token_version,priority:1"`
	// Chain is the chain the claim is settled on
	Chain domain.Chain `gorm:"column:chain;not null;type:varchar(16);uniqueIndex:idx_claims_user_chain_token_version,priority:2"`
	// Token is the claimed token symbol
	Token string `gorm:"column:token;not null;type:varchar(64);uniqueIndex:idx_claims_user_chain_token_version,priority:3"`
	// MerkleVersion is the root version the claim was proven against
	MerkleVersion uint64 `gorm:"column:merkle_version;not null;uniqueIndex:idx_claims_user_chain_token_version,priority:4"`
	// Amount is the claimed amount
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(38,8)"`
	// TxHash is the payout transaction hash once settled
	TxHash *string `gorm:"column:tx_hash;type:varchar(128)"`
	// CreatedAt is the timestamp when this claim was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Claim model
func (Claim) TableName() string {
	return "claims"
}
