package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-referral/internal/domain"
)

// CommissionLedgerEntry represents the commission_ledger_entries table - append-only fee splits
type CommissionLedgerEntry struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BeneficiaryID receives the amount; TREASURY for the remainder
	BeneficiaryID string `gorm:"column:beneficiary_id;not null;type:varchar(255);uniqueIndex:idx_ledger_beneficiary_trade_level,priority:1"`
	// SourceTradeID is the trade this split came from
	SourceTradeID string `gorm:"column:source_trade_id;not null;type:varchar(255);uniqueIndex:idx_ledger_beneficiary_trade_level,priority:2"`
	// Level is -1 for treasury, 0 for cashback and 1..3 for upline
	Level domain.Level `gorm:"column:level;not null;type:smallint;uniqueIndex:idx_ledger_beneficiary_trade_level,priority:3"`
	// Rate is the share of the fee
	Rate decimal.Decimal `gorm:"column:rate;not null;type:numeric(20,8)"`
	// Amount is the split amount, always positive
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(38,8)"`
	// Token is the fee token symbol
	Token string `gorm:"column:token;not null;type:varchar(64)"`
	// Destination is claimable or treasury
	Destination domain.Destination `gorm:"column:destination;not null;type:varchar(16)"`
	// CreatedAt is the timestamp when this entry was appended
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CommissionLedgerEntry model
func (CommissionLedgerEntry) TableName() string {
	return "commission_ledger_entries"
}
