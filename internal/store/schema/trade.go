package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-referral/internal/domain"
)

// Trade represents the trades table - fee-bearing trades that produced ledger entries
type Trade struct {
	// ID is the external trade identifier
	ID string `gorm:"column:id;primaryKey;type:varchar(255)"`
	// UserID is the trader
	UserID string `gorm:"column:user_id;not null;index:idx_trades_user_id;type:varchar(255)"`
	// FeeAmount is the fee charged on the trade
	FeeAmount decimal.Decimal `gorm:"column:fee_amount;not null;type:numeric(38,8)"`
	// Token is the fee token symbol
	Token string `gorm:"column:token;not null;type:varchar(64);index:idx_trades_chain_token,priority:2"`
	// Chain is the settlement chain of the trade
	Chain domain.Chain `gorm:"column:chain;not null;type:varchar(16);index:idx_trades_chain_token,priority:1"`
	// TradedAt is the time the trade happened
	TradedAt time.Time `gorm:"column:traded_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this trade was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Trade model
func (Trade) TableName() string {
	return "trades"
}
