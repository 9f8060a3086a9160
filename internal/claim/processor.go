package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/ledger"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/merkle"
	"github.com/feral-file/ff-referral/internal/onchain"
	"github.com/feral-file/ff-referral/internal/store"
)

//go:generate mockgen -source=processor.go -destination=../mocks/claim_processor.go -package=mocks -mock_names=Processor=MockClaimProcessor

// Processor settles claims against the latest committed root
type Processor interface {
	// Claim proves the user's unclaimed balance on-chain and records the claim at the latest root version
	Claim(ctx context.Context, userID string, chain domain.Chain, token string) (*domain.ClaimResult, error)
}

// Config holds the claim processor configuration
type Config struct {
	// Contracts maps a chain to the distributor contract address or program account
	Contracts map[domain.Chain]string
	// VerifyTimeout bounds every on-chain call of a claim
	VerifyTimeout time.Duration
}

type processor struct {
	config     Config
	store      store.Store
	aggregator ledger.Aggregator
	registry   *onchain.Registry
}

// NewProcessor creates a new claim processor
func NewProcessor(cfg Config, s store.Store, aggregator ledger.Aggregator, registry *onchain.Registry) Processor {
	if cfg.VerifyTimeout <= 0 {
		cfg.VerifyTimeout = 10 * time.Second
	}
	return &processor{
		config:     cfg,
		store:      s,
		aggregator: aggregator,
		registry:   registry,
	}
}

func (p *processor) Claim(ctx context.Context, userID string, chain domain.Chain, token string) (*domain.ClaimResult, error) {
	if userID == "" || token == "" {
		return nil, fmt.Errorf("%w: user id and token are required", domain.ErrInvalidInput)
	}
	if !domain.IsValidChain(chain) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidChain, chain)
	}

	// 1. Latest root
	root, err := p.store.GetLatestRoot(ctx, chain, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest root: %w", err)
	}
	if root == nil {
		return nil, domain.ErrNoRootGenerated
	}

	// 2. Fast double-claim check; the unique index on insert is the real guard
	existing, err := p.store.GetClaim(ctx, userID, chain, token, root.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyClaimed
	}

	// 3. Proof from the current balances
	balances, err := p.aggregator.GetUnclaimedBalances(ctx, chain, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get unclaimed balances: %w", err)
	}
	tree := merkle.NewTree(token, balances)
	proof := tree.Proof(userID)
	if proof == nil || !proof.Amount.IsPositive() {
		return nil, domain.ErrNoClaimableBalance
	}

	// 4-5. On-chain verification, fail closed
	verr := &domain.ProofVerificationError{
		UserID:       userID,
		Chain:        chain,
		Token:        token,
		Amount:       proof.Amount,
		Version:      root.Version,
		DatabaseRoot: root.Root,
		LocalRoot:    tree.RootHex(),
	}
	if err := p.verify(ctx, verr, proof); err != nil {
		if errors.Is(err, domain.ErrRootNotSetOnChain) {
			logger.WarnCtx(ctx, "Claim rejected, root not set on-chain",
				zap.String("userID", userID),
				zap.String("chain", string(chain)),
				zap.String("token", token))
			return nil, err
		}
		logger.ErrorCtx(ctx, err,
			zap.String("userID", userID),
			zap.String("chain", string(chain)),
			zap.String("token", token),
			zap.Uint64("version", root.Version),
			zap.String("onChainRoot", verr.OnChainRoot),
			zap.String("databaseRoot", verr.DatabaseRoot),
			zap.String("localRoot", verr.LocalRoot))
		return nil, err
	}

	// 6. Record the claim
	claim, err := p.store.CreateClaim(ctx, store.CreateClaimInput{
		UserID:        userID,
		Chain:         chain,
		Token:         token,
		MerkleVersion: root.Version,
		Amount:        proof.Amount,
	})
	if err != nil {
		if domain.IsStateConflict(err) {
			logger.WarnCtx(ctx, "Claim rejected at insert",
				zap.String("userID", userID),
				zap.String("chain", string(chain)),
				zap.String("token", token),
				zap.Uint64("version", root.Version),
				zap.Error(err))
			return nil, err
		}
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	logger.InfoCtx(ctx, "Claim recorded",
		zap.String("userID", userID),
		zap.String("chain", string(chain)),
		zap.String("token", token),
		zap.Uint64("version", root.Version),
		zap.String("amount", proof.Amount.StringFixed(domain.AMOUNT_DECIMALS)))

	return &domain.ClaimResult{
		UserID:        userID,
		Chain:         chain,
		Token:         token,
		Amount:        claim.Amount,
		MerkleVersion: claim.MerkleVersion,
		Root:          root.Root,
		Proof:         proof.Siblings,
		TxHash:        claim.TxHash,
		ClaimedAt:     claim.CreatedAt,
	}, nil
}

// verify fills the on-chain root into verr and returns it on any failure
func (p *processor) verify(ctx context.Context, verr *domain.ProofVerificationError, proof *merkle.Proof) error {
	contract, ok := p.config.Contracts[verr.Chain]
	if !ok || contract == "" {
		verr.Cause = fmt.Errorf("no contract configured for chain %s", verr.Chain)
		return verr
	}

	client, err := p.registry.Client(verr.Chain)
	if err != nil {
		verr.Cause = err
		return verr
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.VerifyTimeout)
	defer cancel()

	onChainRoot, err := client.GetRoot(ctx, contract)
	if err != nil {
		verr.Cause = fmt.Errorf("failed to get on-chain root: %w", err)
		return verr
	}
	verr.OnChainRoot = onChainRoot
	if merkle.IsZeroRoot(onChainRoot) {
		return domain.ErrRootNotSetOnChain
	}

	valid, err := client.VerifyProof(ctx, contract, proof.Siblings, proof.BeneficiaryID, proof.Token,
		proof.Amount.StringFixed(domain.AMOUNT_DECIMALS))
	if err != nil {
		verr.Cause = fmt.Errorf("failed to verify proof on-chain: %w", err)
		return verr
	}
	if !valid {
		return verr
	}
	return nil
}
