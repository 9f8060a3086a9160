package onchain

import (
	"context"
	"encoding/binary"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/merkle"
	"github.com/feral-file/ff-referral/internal/mocks"
)

const testContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func packOutput(t *testing.T, method string, values ...interface{}) []byte {
	parsed, err := abi.JSON(strings.NewReader(distributorABI))
	require.NoError(t, err)
	out, err := parsed.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)
	return out
}

func testBalances() []domain.Balance {
	return []domain.Balance{
		{BeneficiaryID: "alice", Amount: decimal.RequireFromString("3")},
		{BeneficiaryID: "bob", Amount: decimal.RequireFromString("1.5")},
		{BeneficiaryID: "carol", Amount: decimal.RequireFromString("0.25")},
	}
}

func TestEVMClient_GetRootAndVersion(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	eth := mocks.NewMockEthClient(ctrl)

	client, err := NewEVMClient(eth, EVMConfig{ChainID: 1})
	require.NoError(t, err)

	root := common.HexToHash("0xabc123")
	eth.EXPECT().CallContract(ctx, gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			assert.Equal(t, common.HexToAddress(testContract), *msg.To)
			return packOutput(t, "merkleRoot", [32]byte(root)), nil
		})
	eth.EXPECT().CallContract(ctx, gomock.Any(), nil).Return(packOutput(t, "rootVersion", big.NewInt(7)), nil)

	got, err := client.GetRoot(ctx, testContract)
	require.NoError(t, err)
	assert.Equal(t, root.Hex(), got)

	version, err := client.GetVersion(ctx, testContract)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), version)
}

func TestEVMClient_ZeroRoot(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	eth := mocks.NewMockEthClient(ctrl)

	client, err := NewEVMClient(eth, EVMConfig{ChainID: 1})
	require.NoError(t, err)

	eth.EXPECT().CallContract(ctx, gomock.Any(), nil).Return(packOutput(t, "merkleRoot", [32]byte{}), nil)

	got, err := client.GetRoot(ctx, testContract)
	require.NoError(t, err)
	assert.Equal(t, domain.ZERO_ROOT, got)
}

func TestEVMClient_VerifyProof(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	eth := mocks.NewMockEthClient(ctrl)

	client, err := NewEVMClient(eth, EVMConfig{ChainID: 1})
	require.NoError(t, err)

	proof := merkle.GenerateProof("bob", "USDT", testBalances())
	require.NotNil(t, proof)

	parsed, err := abi.JSON(strings.NewReader(distributorABI))
	require.NoError(t, err)

	eth.EXPECT().CallContract(ctx, gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			args, err := parsed.Methods["verifyProof"].Inputs.Unpack(msg.Data[4:])
			require.NoError(t, err)
			siblings := args[0].([][32]byte)
			require.Len(t, siblings, len(proof.Siblings))
			for i, s := range siblings {
				assert.Equal(t, proof.Siblings[i], common.Hash(s).Hex())
			}
			assert.Equal(t, "bob", args[1])
			assert.Equal(t, "USDT", args[2])
			assert.Equal(t, "1.50000000", args[3])
			return packOutput(t, "verifyProof", true), nil
		})

	ok, err := client.VerifyProof(ctx, testContract, proof.Siblings, "bob", "USDT", "1.50000000")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEVMClient_Errors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	eth := mocks.NewMockEthClient(ctrl)

	client, err := NewEVMClient(eth, EVMConfig{ChainID: 1})
	require.NoError(t, err)

	_, err = client.GetRoot(ctx, "not-an-address")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = client.VerifyProof(ctx, testContract, []string{"0x1234"}, "bob", "USDT", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	eth.EXPECT().CallContract(ctx, gomock.Any(), nil).Return(nil, errors.New("rpc unavailable"))
	_, err = client.GetVersion(ctx, testContract)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc unavailable")

	_, err = client.UpdateRoot(ctx, testContract, merkle.ZeroRoot.Hex())
	assert.ErrorIs(t, err, domain.ErrRootUpdateUnsupported)

	_, err = NewEVMClient(eth, EVMConfig{ChainID: 1, PrivateKey: "0xnothex"})
	assert.Error(t, err)
}

func TestEVMClient_UpdateRoot(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	eth := mocks.NewMockEthClient(ctrl)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	client, err := NewEVMClient(eth, EVMConfig{
		ChainID:    11155111,
		PrivateKey: hexutil.Encode(crypto.FromECDSA(key)),
	})
	require.NoError(t, err)

	root := merkle.NewTree("USDT", testBalances()).RootHex()

	var sent *types.Transaction
	eth.EXPECT().PendingNonceAt(ctx, from).Return(uint64(4), nil)
	eth.EXPECT().SuggestGasPrice(ctx).Return(big.NewInt(1_000_000_000), nil)
	eth.EXPECT().EstimateGas(ctx, gomock.Any()).Return(uint64(45000), nil)
	eth.EXPECT().SendTransaction(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
		sent = tx
		return nil
	})

	txHash, err := client.UpdateRoot(ctx, testContract, root)
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, sent.Hash().Hex(), txHash)
	assert.Equal(t, uint64(4), sent.Nonce())
	assert.Equal(t, uint64(45000), sent.Gas())
	assert.Equal(t, common.HexToAddress(testContract), *sent.To())

	sender, err := types.Sender(types.NewEIP155Signer(big.NewInt(11155111)), sent)
	require.NoError(t, err)
	assert.Equal(t, from, sender)
}

func encodeRootAccount(root common.Hash, version uint64) []byte {
	data := make([]byte, rootAccountSize)
	copy(data[:8], []byte{1, 2, 3, 4, 5, 6, 7, 8})
	copy(data[8:40], root[:])
	binary.LittleEndian.PutUint64(data[40:48], version)
	return data
}

func accountResult(data []byte) *rpc.GetAccountInfoResult {
	return &rpc.GetAccountInfoResult{
		Value: &rpc.Account{Data: rpc.DataBytesOrJSONFromBytes(data)},
	}
}

func TestSVMClient(t *testing.T) {
	ctx := context.Background()
	account := solana.NewWallet().PublicKey()

	tree := merkle.NewTree("USDC", testBalances())

	t.Run("reads root and version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rpcClient := mocks.NewMockSolanaRPC(ctrl)
		client := NewSVMClient(rpcClient)

		rpcClient.EXPECT().GetAccountInfoWithOpts(ctx, account, gomock.Any()).
			Return(accountResult(encodeRootAccount(tree.Root(), 3)), nil).Times(2)

		root, err := client.GetRoot(ctx, account.String())
		require.NoError(t, err)
		assert.Equal(t, tree.RootHex(), root)

		version, err := client.GetVersion(ctx, account.String())
		require.NoError(t, err)
		assert.Equal(t, uint64(3), version)
	})

	t.Run("missing account reads as zero root", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rpcClient := mocks.NewMockSolanaRPC(ctrl)
		client := NewSVMClient(rpcClient)

		rpcClient.EXPECT().GetAccountInfoWithOpts(ctx, account, gomock.Any()).Return(nil, rpc.ErrNotFound)

		root, err := client.GetRoot(ctx, account.String())
		require.NoError(t, err)
		assert.True(t, merkle.IsZeroRoot(root))
	})

	t.Run("verifies proofs against the account root", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rpcClient := mocks.NewMockSolanaRPC(ctrl)
		client := NewSVMClient(rpcClient)

		rpcClient.EXPECT().GetAccountInfoWithOpts(ctx, account, gomock.Any()).
			Return(accountResult(encodeRootAccount(tree.Root(), 3)), nil).Times(2)

		proof := tree.Proof("carol")
		require.NotNil(t, proof)

		ok, err := client.VerifyProof(ctx, account.String(), proof.Siblings, "carol", "USDC", "0.25000000")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = client.VerifyProof(ctx, account.String(), proof.Siblings, "carol", "USDC", "0.26000000")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("short account data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rpcClient := mocks.NewMockSolanaRPC(ctrl)
		client := NewSVMClient(rpcClient)

		rpcClient.EXPECT().GetAccountInfoWithOpts(ctx, account, gomock.Any()).Return(accountResult([]byte{1, 2, 3}), nil)

		_, err := client.GetRoot(ctx, account.String())
		assert.Error(t, err)
	})

	t.Run("invalid account and unsupported update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := NewSVMClient(mocks.NewMockSolanaRPC(ctrl))

		_, err := client.GetRoot(ctx, "0xnot-base58")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = client.UpdateRoot(ctx, account.String(), tree.RootHex())
		assert.ErrorIs(t, err, domain.ErrRootUpdateUnsupported)
	})
}

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	evm := mocks.NewMockOnChainClient(ctrl)

	r := NewRegistry()
	r.Register(domain.ChainEVM, evm)

	c, err := r.Client(domain.ChainEVM)
	require.NoError(t, err)
	assert.Equal(t, evm, c)

	_, err = r.Client(domain.ChainSVM)
	assert.Error(t, err)

	_, err = r.Client("tezos")
	assert.ErrorIs(t, err, domain.ErrInvalidChain)

	assert.Equal(t, []domain.Chain{domain.ChainEVM}, r.Chains())
}

func TestDial(t *testing.T) {
	ctx := context.Background()

	t.Run("both chains", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dialer := mocks.NewMockEthClientDialer(ctrl)
		ethClient := mocks.NewMockEthClient(ctrl)
		dialer.EXPECT().Dial(ctx, "http://evm").Return(ethClient, nil)
		ethClient.EXPECT().Close()

		var solanaEndpoint string
		registry, closeAll, err := Dial(ctx, DialConfig{
			EVMRPCURL:  "http://evm",
			EVMChainID: 8453,
			SVMRPCURL:  "http://svm",
		}, dialer, func(endpoint string) adapter.SolanaRPC {
			solanaEndpoint = endpoint
			return mocks.NewMockSolanaRPC(ctrl)
		})
		require.NoError(t, err)
		assert.Equal(t, "http://svm", solanaEndpoint)
		assert.ElementsMatch(t, []domain.Chain{domain.ChainEVM, domain.ChainSVM}, registry.Chains())
		closeAll()
	})

	t.Run("nothing configured", func(t *testing.T) {
		registry, closeAll, err := Dial(ctx, DialConfig{}, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, registry.Chains())
		closeAll()
	})

	t.Run("dial failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dialer := mocks.NewMockEthClientDialer(ctrl)
		dialer.EXPECT().Dial(ctx, "http://evm").Return(nil, errors.New("refused"))

		_, _, err := Dial(ctx, DialConfig{EVMRPCURL: "http://evm"}, dialer, nil)
		assert.ErrorContains(t, err, "refused")
	})

	t.Run("bad private key closes the connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dialer := mocks.NewMockEthClientDialer(ctrl)
		ethClient := mocks.NewMockEthClient(ctrl)
		dialer.EXPECT().Dial(ctx, "http://evm").Return(ethClient, nil)
		ethClient.EXPECT().Close()

		_, _, err := Dial(ctx, DialConfig{EVMRPCURL: "http://evm", EVMPrivateKey: "zz"}, dialer, nil)
		assert.Error(t, err)
	})
}
