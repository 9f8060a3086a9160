package messaging

import (
	"context"
	"fmt"
	"strings"

	"github.com/feral-file/ff-referral/internal/domain"
)

const (
	// TradeSubjectFilter matches every trade subject
	TradeSubjectFilter = "trades.*.*"
	// ClaimSubjectFilter matches every claim subject
	ClaimSubjectFilter = "claims.*.*"
)

// Publisher defines the interface for publishing trade and claim events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishTradeEvent publishes a trade for asynchronous commission processing
	PublishTradeEvent(ctx context.Context, event *domain.TradeEvent) error
	// PublishClaimEvent publishes a recorded claim for the payout service
	PublishClaimEvent(ctx context.Context, event *domain.ClaimEvent) error
	// Close closes the connection
	Close()
}

// TradeSubject returns the subject of a trade event: trades.<chain>.<token>
func TradeSubject(chain domain.Chain, token string) string {
	return fmt.Sprintf("trades.%s.%s", chain, subjectToken(token))
}

// ClaimSubject returns the subject of a claim event: claims.<chain>.<token>
func ClaimSubject(chain domain.Chain, token string) string {
	return fmt.Sprintf("claims.%s.%s", chain, subjectToken(token))
}

// subjectToken keeps a token symbol to a single subject level
func subjectToken(token string) string {
	r := strings.NewReplacer(".", "_", "*", "_", ">", "_", " ", "_")
	return r.Replace(token)
}
