package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-referral/internal/domain"
)

// TradeRequest is the body of POST /api/v1/trades
type TradeRequest struct {
	TradeID   string          `json:"trade_id" binding:"required,max=255"`
	UserID    string          `json:"user_id" binding:"required,max=255"`
	FeeAmount decimal.Decimal `json:"fee_amount"`
	Token     string          `json:"token" binding:"required,max=64"`
	Chain     domain.Chain    `json:"chain" binding:"required"`
	Timestamp *time.Time      `json:"timestamp"`
}

// Validate checks the fields the binding tags cannot express
func (r *TradeRequest) Validate() error {
	if !domain.IsValidChain(r.Chain) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidChain, r.Chain)
	}
	if r.FeeAmount.IsNegative() {
		return fmt.Errorf("%w: %s", domain.ErrNegativeFee, r.FeeAmount)
	}
	return nil
}

// ToTradeInput converts the request, defaulting the trade time to now
func (r *TradeRequest) ToTradeInput(now time.Time) domain.TradeInput {
	ts := now
	if r.Timestamp != nil {
		ts = r.Timestamp.UTC()
	}
	return domain.TradeInput{
		TradeID:   r.TradeID,
		UserID:    r.UserID,
		FeeAmount: r.FeeAmount,
		Token:     r.Token,
		Chain:     r.Chain,
		Timestamp: ts,
	}
}

// RegisterReferralRequest is the body of POST /api/v1/referrals.
// Exactly one of ReferrerID and ReferralCode must be set.
type RegisterReferralRequest struct {
	ReferrerID   string `json:"referrer_id" binding:"max=255"`
	ReferralCode string `json:"referral_code" binding:"max=32"`
}

// Validate checks that exactly one referrer reference is given
func (r *RegisterReferralRequest) Validate() error {
	if (r.ReferrerID == "") == (r.ReferralCode == "") {
		return fmt.Errorf("%w: exactly one of referrer_id and referral_code is required", domain.ErrInvalidInput)
	}
	return nil
}

// MarketRequest is a chain and token pair taken from the body or the query string
type MarketRequest struct {
	Chain domain.Chain `json:"chain" form:"chain" binding:"required"`
	Token string       `json:"token" form:"token" binding:"required,max=64"`
}

// PaginationQuery is the limit and offset of list endpoints
type PaginationQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
