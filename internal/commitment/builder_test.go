package commitment

import (
	"context"
	"errors"
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
	builder    Builder
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

	d.builder = NewBuilder(Config{
		Contracts:      map[domain.Chain]string{domain.ChainEVM: testContract},
		VersionRetries: 3,
	}, d.store, d.aggregator, registry)
	return d
}

func balances() []domain.Balance {
	return []domain.Balance{
		{BeneficiaryID: "alice", Amount: decimal.RequireFromString("30")},
		{BeneficiaryID: "bob", Amount: decimal.RequireFromString("3")},
		{BeneficiaryID: "trader", Amount: decimal.RequireFromString("10")},
	}
}

func TestGenerateAndStoreRoot(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)

	tree := merkle.NewTree("USDT", balances())
	now := time.Now()

	d.aggregator.EXPECT().GetUnclaimedBalances(ctx, domain.ChainEVM, "USDT").Return(balances(), nil)
	d.store.EXPECT().AppendRoot(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, input store.AppendRootInput) (*schema.MerkleRoot, error) {
		assert.Equal(t, tree.RootHex(), input.Root)
		assert.Equal(t, 3, input.LeafCount)
		assert.Len(t, input.Leaves, 3)
		return &schema.MerkleRoot{
			Chain:     input.Chain,
			Token:     input.Token,
			Version:   4,
			Root:      input.Root,
			LeafCount: input.LeafCount,
			CreatedAt: now,
		}, nil
	})

	record, err := d.builder.GenerateAndStoreRoot(ctx, domain.ChainEVM, "USDT")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), record.Version)
	assert.Equal(t, tree.RootHex(), record.Root)
	assert.Equal(t, now, record.CreatedAt)
}

func TestGenerateAndStoreRoot_Empty(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)

	d.aggregator.EXPECT().GetUnclaimedBalances(ctx, domain.ChainEVM, "USDT").Return(nil, nil)
	d.store.EXPECT().AppendRoot(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, input store.AppendRootInput) (*schema.MerkleRoot, error) {
		assert.Equal(t, domain.ZERO_ROOT, input.Root)
		assert.Equal(t, 0, input.LeafCount)
		return &schema.MerkleRoot{Chain: input.Chain, Token: input.Token, Version: 1, Root: input.Root}, nil
	})

	record, err := d.builder.GenerateAndStoreRoot(ctx, domain.ChainEVM, "USDT")
	require.NoError(t, err)
	assert.Equal(t, domain.ZERO_ROOT, record.Root)
	assert.Equal(t, uint64(1), record.Version)
}

func TestGenerateAndStoreRoot_RetriesVersionConflict(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)

	d.aggregator.EXPECT().GetUnclaimedBalances(ctx, domain.ChainEVM, "USDT").Return(balances(), nil)
	gomock.InOrder(
		d.store.EXPECT().AppendRoot(ctx, gomock.Any()).Return(nil, store.ErrVersionConflict),
		d.store.EXPECT().AppendRoot(ctx, gomock.Any()).Return(&schema.MerkleRoot{Chain: domain.ChainEVM, Token: "USDT", Version: 2}, nil),
	)

	record, err := d.builder.GenerateAndStoreRoot(ctx, domain.ChainEVM, "USDT")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), record.Version)
}

func TestGenerateAndStoreRoot_PermanentError(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)

	d.aggregator.EXPECT().GetUnclaimedBalances(ctx, domain.ChainEVM, "USDT").Return(balances(), nil)
	d.store.EXPECT().AppendRoot(ctx, gomock.Any()).Return(nil, errors.New("disk full")).Times(1)

	_, err := d.builder.GenerateAndStoreRoot(ctx, domain.ChainEVM, "USDT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGetProof(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)

	d.aggregator.EXPECT().GetUnclaimedBalances(ctx, domain.ChainEVM, "USDT").Return(balances(), nil).Times(2)

	proof, err := d.builder.GetProof(ctx, "bob", domain.ChainEVM, "USDT")
	require.NoError(t, err)
	assert.True(t, proof.Amount.Equal(decimal.RequireFromString("3")))
	assert.True(t, merkle.VerifyProof(proof, merkle.NewTree("USDT", balances()).RootHex()))

	_, err = d.builder.GetProof(ctx, "nobody", domain.ChainEVM, "USDT")
	assert.ErrorIs(t, err, domain.ErrNoClaimableBalance)
}

func TestPublishRoot(t *testing.T) {
	ctx := context.Background()
	record := &domain.RootRecord{Chain: domain.ChainEVM, Token: "USDT", Root: "0x01", Version: 2}

	t.Run("success", func(t *testing.T) {
		d := setupTest(t)
		d.client.EXPECT().UpdateRoot(ctx, testContract, "0x01").Return("0xtx", nil)

		txHash, err := d.builder.PublishRoot(ctx, record)
		require.NoError(t, err)
		assert.Equal(t, "0xtx", txHash)
	})

	t.Run("collaborator failure", func(t *testing.T) {
		d := setupTest(t)
		d.client.EXPECT().UpdateRoot(ctx, testContract, "0x01").Return("", domain.ErrRootUpdateUnsupported)

		_, err := d.builder.PublishRoot(ctx, record)
		assert.ErrorIs(t, err, domain.ErrRootUpdateUnsupported)
	})

	t.Run("no contract for chain", func(t *testing.T) {
		d := setupTest(t)
		_, err := d.builder.PublishRoot(ctx, &domain.RootRecord{Chain: domain.ChainSVM, Token: "USDC"})
		assert.Error(t, err)
	})
}

func TestGetLatestRoot(t *testing.T) {
	ctx := context.Background()
	d := setupTest(t)

	d.store.EXPECT().GetLatestRoot(ctx, domain.ChainEVM, "USDT").Return(nil, nil)
	_, err := d.builder.GetLatestRoot(ctx, domain.ChainEVM, "USDT")
	assert.ErrorIs(t, err, domain.ErrNoRootGenerated)

	d.store.EXPECT().GetLatestRoot(ctx, domain.ChainEVM, "USDT").
		Return(&schema.MerkleRoot{Chain: domain.ChainEVM, Token: "USDT", Version: 9, Root: "0xab"}, nil)
	record, err := d.builder.GetLatestRoot(ctx, domain.ChainEVM, "USDT")
	require.NoError(t, err)
	assert.Equal(t, uint64(9), record.Version)

	_, err = d.builder.GetLatestRoot(ctx, "tezos", "USDT")
	assert.ErrorIs(t, err, domain.ErrInvalidChain)
}
