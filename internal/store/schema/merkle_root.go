package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-referral/internal/domain"
)

// MerkleRoot represents the merkle_roots table - versioned root commitments per chain and token
type MerkleRoot struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Chain is the chain the root is committed for
	Chain domain.Chain `gorm:"column:chain;not null;type:varchar(16);uniqueIndex:idx_merkle_roots_chain_token_version,priority:1"`
	// Token is the token symbol the root is committed for
	Token string `gorm:"column:token;not null;type:varchar(64);uniqueIndex:idx_merkle_roots_chain_token_version,priority:2"`
	// Version starts at 1 and increases by one per generated root
	Version uint64 `gorm:"column:version;not null;uniqueIndex:idx_merkle_roots_chain_token_version,priority:3"`
	// Root is the 0x-prefixed hex root
	Root string `gorm:"column:root;not null;type:varchar(66)"`
	// LeafCount is the number of balances in the tree
	LeafCount int `gorm:"column:leaf_count;not null"`
	// Leaves is the balance snapshot the root was built from
	Leaves datatypes.JSON `gorm:"column:leaves;type:jsonb"`
	// CreatedAt is the timestamp when this root was generated
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MerkleRoot model
func (MerkleRoot) TableName() string {
	return "merkle_roots"
}
