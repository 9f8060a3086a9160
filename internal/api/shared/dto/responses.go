package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/merkle"
	"github.com/feral-file/ff-referral/internal/store/schema"
)

// TradeResponse is returned by POST /api/v1/trades
type TradeResponse struct {
	TradeID   string         `json:"trade_id"`
	Queued    bool           `json:"queued"`
	Duplicate bool           `json:"duplicate"`
	Splits    []domain.Split `json:"splits,omitempty"`
}

// ReferralLinkResponse is returned by POST /api/v1/referrals
type ReferralLinkResponse struct {
	RefereeID  string    `json:"referee_id"`
	ReferrerID string    `json:"referrer_id"`
	Level      int       `json:"level"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReferralCodeResponse is returned by POST /api/v1/referrals/code
type ReferralCodeResponse struct {
	UserID string `json:"user_id"`
	Code   string `json:"code"`
}

// NetworkLevel is one level of a user's downline
type NetworkLevel struct {
	Level   domain.Level `json:"level"`
	Count   int          `json:"count"`
	UserIDs []string     `json:"user_ids"`
}

// NetworkResponse is returned by GET /api/v1/users/:id/network
type NetworkResponse struct {
	UserID     string         `json:"user_id"`
	ReferrerID *string        `json:"referrer_id"`
	Levels     []NetworkLevel `json:"levels"`
}

// EarningsResponse is returned by GET /api/v1/users/:id/earnings
type EarningsResponse struct {
	UserID   string           `json:"user_id"`
	Earnings []domain.Earning `json:"earnings"`
}

// TradeCommissionResponse is returned by GET /api/v1/users/:id/trades/:trade_id/commission
type TradeCommissionResponse struct {
	UserID  string          `json:"user_id"`
	TradeID string          `json:"trade_id"`
	Amount  decimal.Decimal `json:"amount"`
}

// TradeItem is one trade of a user
type TradeItem struct {
	TradeID   string          `json:"trade_id"`
	FeeAmount decimal.Decimal `json:"fee_amount"`
	Token     string          `json:"token"`
	Chain     domain.Chain    `json:"chain"`
	TradedAt  time.Time       `json:"traded_at"`
}

// TradeListResponse is returned by GET /api/v1/users/:id/trades
type TradeListResponse struct {
	Trades []TradeItem `json:"trades"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// BalanceListResponse is returned by GET /api/v1/balances
type BalanceListResponse struct {
	Chain    domain.Chain     `json:"chain"`
	Token    string           `json:"token"`
	Balances []domain.Balance `json:"balances"`
	Total    decimal.Decimal  `json:"total"`
}

// RootResponse is returned by the root endpoints
type RootResponse struct {
	Chain      domain.Chain `json:"chain"`
	Token      string       `json:"token"`
	Root       string       `json:"root,omitempty"`
	Version    uint64       `json:"version,omitempty"`
	LeafCount  int          `json:"leaf_count"`
	CreatedAt  *time.Time   `json:"created_at,omitempty"`
	WorkflowID string       `json:"workflow_id,omitempty"`
	RunID      string       `json:"run_id,omitempty"`
}

// ProofResponse is returned by GET /api/v1/users/:id/proof
type ProofResponse struct {
	*merkle.Proof
	Chain domain.Chain `json:"chain"`
	// LatestRoot is the last committed root, nil before the first one
	LatestRoot *RootResponse `json:"latest_root,omitempty"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// MapRootRecord maps a root record to its response
func MapRootRecord(r *domain.RootRecord) *RootResponse {
	createdAt := r.CreatedAt
	return &RootResponse{
		Chain:     r.Chain,
		Token:     r.Token,
		Root:      r.Root,
		Version:   r.Version,
		LeafCount: r.LeafCount,
		CreatedAt: &createdAt,
	}
}

// MapNetwork maps a referral network to its response, levels in ascending order
func MapNetwork(n *domain.Network) *NetworkResponse {
	resp := &NetworkResponse{
		UserID:     n.UserID,
		ReferrerID: n.ReferrerID,
		Levels:     make([]NetworkLevel, 0, domain.MAX_REFERRAL_DEPTH),
	}
	for level := domain.Level(1); level <= domain.MAX_REFERRAL_DEPTH; level++ {
		userIDs := n.Levels[level]
		if userIDs == nil {
			userIDs = []string{}
		}
		resp.Levels = append(resp.Levels, NetworkLevel{
			Level:   level,
			Count:   n.Counts[level],
			UserIDs: userIDs,
		})
	}
	return resp
}

// MapTrades maps stored trades to list items
func MapTrades(trades []schema.Trade) []TradeItem {
	items := make([]TradeItem, len(trades))
	for i, t := range trades {
		items[i] = TradeItem{
			TradeID:   t.ID,
			FeeAmount: t.FeeAmount,
			Token:     t.Token,
			Chain:     t.Chain,
			TradedAt:  t.TradedAt,
		}
	}
	return items
}
