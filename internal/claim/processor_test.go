package claim

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/merkle"
	"github.com/feral-file/ff-referral/internal/mocks"
	"github.com/feral-file/ff-referral/internal/onchain"
	"github.com/feral-file/ff-referral/internal/store"
	"github.com/feral-file/ff-referral/internal/store/schema"
)

const testContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

type testDeps struct {
	store      *mocks.MockStore
	aggregator *mocks.MockBalanceAggregator
	client     *mocks.MockOnChainClient
	processor  Processor
}

func setupTest(t *testing.T) *testDeps {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := &testDeps{
		store:      mocks.NewMockStore(ctrl),
		aggregator: mocks.NewMockBalanceAggregator(ctrl),
		client:     mocks.NewMockOnChainClient(ctrl),
	}

	registry := onchain.NewRegistry()
	registry.Register(domain.ChainEVM, d.client)

	d.processor = NewProcessor(Config{
		Contracts:     map[domain.Chain]string{domain.ChainEVM: testContract},
		VerifyTimeout: 50 * time.Millisecond,
	}, d.store, d.aggregator, registry)
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balances() []domain.Balance {
	return []domain.Balance{
		{BeneficiaryID: "alice", Amount: dec("30")},
		{BeneficiaryID: "bob", Amount: dec("3")},
		{BeneficiaryID: "trader", Amount: dec("10")},
	}
}

func latestRoot(version uint64) *schema.MerkleRoot {
	return &schema.MerkleRoot{
		Chain:     domain.ChainEVM,
		Token:     "USDT",
		Version:   version,
		Root:      merkle.NewTree("USDT", balances()).RootHex(),
		LeafCount: 3,
	}
}

// expectUpToProof sets up steps 1 to 3 of a claim for alice at version 1
func (d *testDeps) expectUpToProof(ctx context.Context) {
	d.store.EXPECT().GetLatestRoot(ctx, domain.ChainEVM, "USDT").Return(latestRoot(1), nil)
	d.store.EXPECT().GetClaim(ctx, "alice", domain.ChainEVM, "USDT", uint64(1)).Return(nil, nil)
	d.aggregator.EXPECT().GetUnclaimedBalances(ctx, domain.ChainEVM, "USDT").Return(balances(), nil)
}

func TestClaim_Success(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)
	d.expectUpToProof(ctx)

	tree := merkle.NewTree("USDT", balances())
	proof := tree.Proof("alice")
	now := time.Now()

	d.client.EXPECT().GetRoot(gomock.Any(), testContract).Return(tree.RootHex(), nil)
	d.client.EXPECT().VerifyProof(gomock.Any(), testContract, proof.Siblings, "alice", "USDT", "30.00000000").Return(true, nil)
	d.store.EXPECT().CreateClaim(ctx, store.CreateClaimInput{
		UserID:        "alice",
		Chain:         domain.ChainEVM,
		Token:         "USDT",
		MerkleVersion: 1,
		Amount:        proof.Amount,
	}).Return(&schema.Claim{ID: 1, UserID: "alice", Chain: domain.ChainEVM, Token: "USDT", MerkleVersion: 1, Amount: proof.Amount, CreatedAt: now}, nil)

	result, err := d.processor.Claim(ctx, "alice", domain.ChainEVM, "USDT")
	require.NoError(t, err)
	assert.True(t, result.Amount.Equal(dec("30")))
	assert.Equal(t, uint64(1), result.MerkleVersion)
	assert.Equal(t, proof.Siblings, result.Proof)
	assert.Nil(t, result.TxHash)
	assert.Equal(t, now, result.ClaimedAt)
}

func TestClaim_NoRoot(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)

	d.store.EXPECT().GetLatestRoot(ctx, domain.ChainEVM, "USDT").Return(nil, nil)

	_, err := d.processor.Claim(ctx, "alice", domain.ChainEVM, "USDT")
	assert.ErrorIs(t, err, domain.ErrNoRootGenerated)
}

func TestClaim_AlreadyClaimedAtVersion(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)

	d.store.EXPECT().GetLatestRoot(ctx, domain.ChainEVM, "USDT").Return(latestRoot(2), nil)
	d.store.EXPECT().GetClaim(ctx, "alice", domain.ChainEVM, "USDT", uint64(2)).Return(&schema.Claim{ID: 5}, nil)

	_, err := d.processor.Claim(ctx, "alice", domain.ChainEVM, "USDT")
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
	assert.True(t, domain.IsStateConflict(err))
}

func TestClaim_LostInsertRace(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)
	d.expectUpToProof(ctx)

	tree := merkle.NewTree("USDT", balances())
	d.client.EXPECT().GetRoot(gomock.Any(), testContract).Return(tree.RootHex(), nil)
	d.client.EXPECT().VerifyProof(gomock.Any(), testContract, gomock.Any(), "alice", "USDT", "30.00000000").Return(true, nil)
	d.store.EXPECT().CreateClaim(ctx, gomock.Any()).Return(nil, domain.ErrAlreadyClaimed)

	_, err := d.processor.Claim(ctx, "alice", domain.ChainEVM, "USDT")
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
}

func TestClaim_RejectedAtInsert(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"newer root generated meanwhile", fmt.Errorf("%w: claim at version 1, latest is 2", domain.ErrStaleRootVersion)},
		{"balance taken by a claim at another version", fmt.Errorf("%w: claiming 30 with 0 unclaimed", domain.ErrClaimExceedsBalance)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			d := setupTest(t)
			d.expectUpToProof(ctx)

			tree := merkle.NewTree("USDT", balances())
			d.client.EXPECT().GetRoot(gomock.Any(), testContract).Return(tree.RootHex(), nil)
			d.client.EXPECT().VerifyProof(gomock.Any(), testContract, gomock.Any(), "alice", "USDT", "30.00000000").Return(true, nil)
			d.store.EXPECT().CreateClaim(ctx, gomock.Any()).Return(nil, tt.err)

			_, err := d.processor.Claim(ctx, "alice", domain.ChainEVM, "USDT")
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, domain.IsStateConflict(err))
		})
	}
}

func TestClaim_NoClaimableBalance(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)

	d.store.EXPECT().GetLatestRoot(ctx, domain.ChainEVM, "USDT").Return(latestRoot(1), nil)
	d.store.EXPECT().GetClaim(ctx, "dave", domain.ChainEVM, "USDT", uint64(1)).Return(nil, nil)
	d.aggregator.EXPECT().GetUnclaimedBalances(ctx, domain.ChainEVM, "USDT").Return(balances(), nil)

	_, err := d.processor.Claim(ctx, "dave", domain.ChainEVM, "USDT")
	assert.ErrorIs(t, err, domain.ErrNoClaimableBalance)
}

func TestClaim_RootNotSetOnChain(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)
	d.expectUpToProof(ctx)

	d.client.EXPECT().GetRoot(gomock.Any(), testContract).Return(domain.ZERO_ROOT, nil)

	_, err := d.processor.Claim(ctx, "alice", domain.ChainEVM, "USDT")
	assert.ErrorIs(t, err, domain.ErrRootNotSetOnChain)
}

func TestClaim_VerificationRejected(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)
	d.expectUpToProof(ctx)

	d.client.EXPECT().GetRoot(gomock.Any(), testContract).Return("0x"+"ab"+merkle.ZeroRoot.Hex()[4:], nil)
	d.client.EXPECT().VerifyProof(gomock.Any(), testContract, gomock.Any(), "alice", "USDT", "30.00000000").Return(false, nil)

	_, err := d.processor.Claim(ctx, "alice", domain.ChainEVM, "USDT")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProofVerificationFailed)

	var verr *domain.ProofVerificationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, latestRoot(1).Root, verr.DatabaseRoot)
	assert.Equal(t, latestRoot(1).Root, verr.LocalRoot)
	assert.NotEqual(t, verr.DatabaseRoot, verr.OnChainRoot)
	assert.Equal(t, uint64(1), verr.Version)
	assert.True(t, verr.Amount.Equal(dec("30")))
}

func TestClaim_CollaboratorError(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)
	d.expectUpToProof(ctx)

	tree := merkle.NewTree("USDT", balances())
	d.client.EXPECT().GetRoot(gomock.Any(), testContract).Return(tree.RootHex(), nil)
	d.client.EXPECT().VerifyProof(gomock.Any(), testContract, gomock.Any(), "alice", "USDT", "30.00000000").
		Return(false, errors.New("execution reverted"))

	_, err := d.processor.Claim(ctx, "alice", domain.ChainEVM, "USDT")
	assert.ErrorIs(t, err, domain.ErrProofVerificationFailed)
	assert.Contains(t, err.Error(), "execution reverted")
}

func TestClaim_CollaboratorTimeout(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)
	d.expectUpToProof(ctx)

	d.client.EXPECT().GetRoot(gomock.Any(), testContract).DoAndReturn(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	start := time.Now()
	_, err := d.processor.Claim(ctx, "alice", domain.ChainEVM, "USDT")
	assert.ErrorIs(t, err, domain.ErrProofVerificationFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestClaim_InvalidInput(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)

	_, err := d.processor.Claim(ctx, "alice", "tezos", "USDT")
	assert.ErrorIs(t, err, domain.ErrInvalidChain)

	_, err = d.processor.Claim(ctx, "", domain.ChainEVM, "USDT")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
