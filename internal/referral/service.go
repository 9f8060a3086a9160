package referral

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/store"
)

//go:generate mockgen -source=service.go -destination=../mocks/referral_service.go -package=mocks -mock_names=Service=MockReferralService

// Service manages referral links, referral codes and downline queries
type Service interface {
	// Register links referee under referrer after validation
	Register(ctx context.Context, refereeID, referrerID string) (*domain.ReferralLink, error)
	// RegisterByCode resolves a referral code and links referee under its owner
	RegisterByCode(ctx context.Context, refereeID, code string) (*domain.ReferralLink, error)
	// GetOrCreateReferralCode returns the user's referral code, creating the user and code on first call
	GetOrCreateReferralCode(ctx context.Context, userID string) (string, error)
	// GetNetwork returns the user's downline grouped by level
	GetNetwork(ctx context.Context, userID string) (*domain.Network, error)
}

// Config holds referral service configuration
type Config struct {
	DefaultCashbackRate decimal.Decimal
	// CodeAttempts bounds the retries on referral code collisions
	CodeAttempts uint64
}

type service struct {
	config    Config
	store     store.Store
	validator *Validator
}

// NewService creates a new referral service
func NewService(cfg Config, s store.Store) Service {
	if cfg.CodeAttempts == 0 {
		cfg.CodeAttempts = 5
	}
	return &service{
		config:    cfg,
		store:     s,
		validator: NewValidator(s),
	}
}

func (s *service) Register(ctx context.Context, refereeID, referrerID string) (*domain.ReferralLink, error) {
	level, err := s.validator.ComputeLevel(ctx, refereeID, referrerID)
	if err != nil {
		return nil, err
	}

	link, err := s.store.CreateReferralLink(ctx, store.CreateReferralLinkInput{
		RefereeID:           refereeID,
		ReferrerID:          referrerID,
		Level:               level,
		DefaultCashbackRate: s.config.DefaultCashbackRate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrReferrerAlreadySet) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create referral link: %w", err)
	}

	logger.InfoCtx(ctx, "Referral registered",
		zap.String("refereeID", refereeID),
		zap.String("referrerID", referrerID),
		zap.Int("level", level))

	return &domain.ReferralLink{
		RefereeID:  link.RefereeID,
		ReferrerID: link.ReferrerID,
		Level:      link.Level,
		CreatedAt:  link.CreatedAt,
	}, nil
}

func (s *service) RegisterByCode(ctx context.Context, refereeID, code string) (*domain.ReferralLink, error) {
	owner, err := s.store.GetUserByReferralCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve referral code: %w", err)
	}
	if owner == nil {
		return nil, domain.ErrReferralCodeNotFound
	}

	return s.Register(ctx, refereeID, owner.ID)
}

func (s *service) GetOrCreateReferralCode(ctx context.Context, userID string) (string, error) {
	user, err := s.store.EnsureUser(ctx, userID, s.config.DefaultCashbackRate)
	if err != nil {
		return "", fmt.Errorf("failed to ensure user: %w", err)
	}
	if user.ReferralCode != nil {
		return *user.ReferralCode, nil
	}

	operation := func() error {
		ok, err := s.store.SetReferralCode(ctx, userID, newReferralCode())
		if err != nil {
			return backoff.Permanent(err)
		}
		if !ok {
			return errors.New("referral code collision")
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 200 * time.Millisecond
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, s.config.CodeAttempts), ctx)); err != nil {
		return "", fmt.Errorf("failed to assign referral code: %w", err)
	}

	// re-read so a concurrent caller that won the update sees the same code
	user, err = s.store.GetUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || user.ReferralCode == nil {
		return "", fmt.Errorf("referral code missing after assignment for user %s", userID)
	}
	return *user.ReferralCode, nil
}

func (s *service) GetNetwork(ctx context.Context, userID string) (*domain.Network, error) {
	referrer, err := s.store.GetReferrer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get referrer: %w", err)
	}

	network := &domain.Network{
		UserID:     userID,
		ReferrerID: referrer,
		Levels:     make(map[domain.Level][]string, domain.MAX_REFERRAL_DEPTH),
		Counts:     make(map[domain.Level]int, domain.MAX_REFERRAL_DEPTH),
	}

	// one lookup per level, bounded by the tree depth
	frontier := []string{userID}
	for level := 1; level <= domain.MAX_REFERRAL_DEPTH && len(frontier) > 0; level++ {
		links, err := s.store.GetDirectReferees(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("failed to get level %d referees: %w", level, err)
		}

		next := make([]string, 0, len(links))
		for _, l := range links {
			next = append(next, l.RefereeID)
		}
		network.Levels[domain.Level(level)] = next
		network.Counts[domain.Level(level)] = len(next)
		frontier = next
	}

	return network, nil
}

// newReferralCode returns the last characters of a fresh ULID, which come from its random part
func newReferralCode() string {
	id := ulid.Make().String()
	return id[len(id)-domain.REFERRAL_CODE_LENGTH:]
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
