package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents the users table - traders and referrers
type User struct {
	// ID is the external user identifier
	ID string `gorm:"column:id;primaryKey;type:varchar(255)"`
	// CashbackRate is the share of the user's own fees paid back to them, in [0, 1]
	CashbackRate decimal.Decimal `gorm:"column:cashback_rate;not null;default:0;type:numeric(20,8)"`
	// ReferralCode is the public code other users register with
	ReferralCode *string `gorm:"column:referral_code;uniqueIndex:idx_users_referral_code;type:varchar(32)"`
	// CreatedAt is the timestamp when this user was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this user was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
