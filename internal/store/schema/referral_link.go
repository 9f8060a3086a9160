package schema

import "time"

// ReferralLink represents the referral_links table - one referrer per referee, written once
type ReferralLink struct {
	// RefereeID is the referred user; the primary key enforces a single referrer
	RefereeID string `gorm:"column:referee_id;primaryKey;type:varchar(255)"`
	// ReferrerID is the user who referred the referee
	ReferrerID string `gorm:"column:referrer_id;not null;index:idx_referral_links_referrer_id;type:varchar(255)"`
	// Level is the depth of the referee below the root of its tree (1..3)
	Level int `gorm:"column:level;not null;type:smallint"`
	// CreatedAt is the timestamp when this link was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ReferralLink model
func (ReferralLink) TableName() string {
	return "referral_links"
}
