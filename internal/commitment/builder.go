package commitment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/ledger"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/merkle"
	"github.com/feral-file/ff-referral/internal/onchain"
	"github.com/feral-file/ff-referral/internal/store"
	"github.com/feral-file/ff-referral/internal/store/schema"
)

//go:generate mockgen -source=builder.go -destination=../mocks/root_builder.go -package=mocks -mock_names=Builder=MockRootBuilder

// Builder commits unclaimed balances into versioned Merkle roots
type Builder interface {
	// GenerateAndStoreRoot snapshots the unclaimed balances and stores the next root version
	GenerateAndStoreRoot(ctx context.Context, chain domain.Chain, token string) (*domain.RootRecord, error)

	// GetProof builds the user's proof from the current unclaimed balances
	GetProof(ctx context.Context, userID string, chain domain.Chain, token string) (*merkle.Proof, error)

	// PublishRoot pushes a stored root to the chain's distributor contract.
	// The stored root is kept whatever the outcome.
	PublishRoot(ctx context.Context, record *domain.RootRecord) (string, error)

	// GetLatestRoot returns the latest stored root, domain.ErrNoRootGenerated if none
	GetLatestRoot(ctx context.Context, chain domain.Chain, token string) (*domain.RootRecord, error)
}

// Config holds the builder configuration
type Config struct {
	// Contracts maps a chain to the distributor contract address or program account
	Contracts map[domain.Chain]string
	// VersionRetries bounds the retries when another writer takes the same version
	VersionRetries uint64
}

type builder struct {
	config     Config
	store      store.Store
	aggregator ledger.Aggregator
	registry   *onchain.Registry
}

// NewBuilder creates a new Merkle commitment builder
func NewBuilder(cfg Config, s store.Store, aggregator ledger.Aggregator, registry *onchain.Registry) Builder {
	if cfg.VersionRetries == 0 {
		cfg.VersionRetries = 5
	}
	return &builder{
		config:     cfg,
		store:      s,
		aggregator: aggregator,
		registry:   registry,
	}
}

func (b *builder) GenerateAndStoreRoot(ctx context.Context, chain domain.Chain, token string) (*domain.RootRecord, error) {
	balances, err := b.aggregator.GetUnclaimedBalances(ctx, chain, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get unclaimed balances: %w", err)
	}

	tree := merkle.NewTree(token, balances)

	operation := func() (*schema.MerkleRoot, error) {
		root, err := b.store.AppendRoot(ctx, store.AppendRootInput{
			Chain:     chain,
			Token:     token,
			Root:      tree.RootHex(),
			LeafCount: tree.LeafCount(),
			Leaves:    tree.Balances(),
		})
		if err != nil {
			if errors.Is(err, store.ErrVersionConflict) {
				logger.WarnCtx(ctx, "Root version taken by a concurrent writer, retrying",
					zap.String("chain", string(chain)),
					zap.String("token", token))
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return root, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 20 * time.Millisecond
	bo.MaxInterval = 500 * time.Millisecond
	root, err := backoff.RetryWithData(operation, backoff.WithContext(backoff.WithMaxRetries(bo, b.config.VersionRetries), ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to store root: %w", err)
	}

	logger.InfoCtx(ctx, "Merkle root generated",
		zap.String("chain", string(chain)),
		zap.String("token", token),
		zap.Uint64("version", root.Version),
		zap.String("root", root.Root),
		zap.Int("leafCount", root.LeafCount))

	return toRootRecord(root), nil
}

func (b *builder) GetProof(ctx context.Context, userID string, chain domain.Chain, token string) (*merkle.Proof, error) {
	balances, err := b.aggregator.GetUnclaimedBalances(ctx, chain, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get unclaimed balances: %w", err)
	}

	proof := merkle.GenerateProof(userID, token, balances)
	if proof == nil || !proof.Amount.IsPositive() {
		return nil, domain.ErrNoClaimableBalance
	}
	return proof, nil
}

func (b *builder) PublishRoot(ctx context.Context, record *domain.RootRecord) (string, error) {
	contract, ok := b.config.Contracts[record.Chain]
	if !ok || contract == "" {
		return "", fmt.Errorf("no contract configured for chain %s", record.Chain)
	}

	client, err := b.registry.Client(record.Chain)
	if err != nil {
		return "", err
	}

	txHash, err := client.UpdateRoot(ctx, contract, record.Root)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish root on-chain",
			zap.String("chain", string(record.Chain)),
			zap.String("token", record.Token),
			zap.Uint64("version", record.Version),
			zap.Error(err))
		return "", fmt.Errorf("failed to update on-chain root: %w", err)
	}

	logger.InfoCtx(ctx, "Merkle root published",
		zap.String("chain", string(record.Chain)),
		zap.String("token", record.Token),
		zap.Uint64("version", record.Version),
		zap.String("txHash", txHash))

	return txHash, nil
}

func (b *builder) GetLatestRoot(ctx context.Context, chain domain.Chain, token string) (*domain.RootRecord, error) {
	if !domain.IsValidChain(chain) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidChain, chain)
	}

	root, err := b.store.GetLatestRoot(ctx, chain, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest root: %w", err)
	}
	if root == nil {
		return nil, domain.ErrNoRootGenerated
	}
	return toRootRecord(root), nil
}

func toRootRecord(root *schema.MerkleRoot) *domain.RootRecord {
	return &domain.RootRecord{
		Chain:     root.Chain,
		Token:     root.Token,
		Root:      root.Root,
		Version:   root.Version,
		LeafCount: root.LeafCount,
		CreatedAt: root.CreatedAt,
	}
}
