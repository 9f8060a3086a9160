package onchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
)

// distributorABI is the subset of the claim distributor contract used here
const distributorABI = `[
	{"inputs":[],"name":"merkleRoot","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"rootVersion","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"newRoot","type":"bytes32"}],"name":"updateRoot","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"proof","type":"bytes32[]"},{"name":"beneficiaryId","type":"string"},{"name":"token","type":"string"},{"name":"amount","type":"string"}],"name":"verifyProof","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"}
]`

// EVMConfig holds the settings of the EVM client
type EVMConfig struct {
	ChainID int64
	// PrivateKey signs root updates; empty disables UpdateRoot
	PrivateKey string
}

type evmClient struct {
	client  adapter.EthClient
	abi     abi.ABI
	chainID *big.Int
	key     *ecdsa.PrivateKey
}

// NewEVMClient creates a client for the distributor contract on an EVM chain
func NewEVMClient(client adapter.EthClient, cfg EVMConfig) (Client, error) {
	parsed, err := abi.JSON(strings.NewReader(distributorABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	c := &evmClient{
		client:  client,
		abi:     parsed,
		chainID: big.NewInt(cfg.ChainID),
	}

	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		c.key = key
	}

	return c, nil
}

func (c *evmClient) call(ctx context.Context, contract string, method string, args ...interface{}) ([]interface{}, error) {
	if !common.IsHexAddress(contract) {
		return nil, fmt.Errorf("%w: invalid contract address %q", domain.ErrInvalidInput, contract)
	}

	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	to := common.HexToAddress(contract)
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &to,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	out, err := c.abi.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty result from %s", method)
	}
	return out, nil
}

func (c *evmClient) GetRoot(ctx context.Context, contract string) (string, error) {
	out, err := c.call(ctx, contract, "merkleRoot")
	if err != nil {
		return "", err
	}

	root, ok := out[0].([32]byte)
	if !ok {
		return "", fmt.Errorf("unexpected merkleRoot type %T", out[0])
	}
	return common.Hash(root).Hex(), nil
}

func (c *evmClient) GetVersion(ctx context.Context, contract string) (uint64, error) {
	out, err := c.call(ctx, contract, "rootVersion")
	if err != nil {
		return 0, err
	}

	version, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("unexpected rootVersion type %T", out[0])
	}
	if !version.IsUint64() {
		return 0, fmt.Errorf("rootVersion out of range: %s", version)
	}
	return version.Uint64(), nil
}

func (c *evmClient) VerifyProof(ctx context.Context, contract string, siblings []string, beneficiaryID, token, amount string) (bool, error) {
	hashes, err := parseHashes(siblings)
	if err != nil {
		return false, err
	}

	proof := make([][32]byte, len(hashes))
	for i, h := range hashes {
		proof[i] = h
	}

	out, err := c.call(ctx, contract, "verifyProof", proof, beneficiaryID, token, amount)
	if err != nil {
		return false, err
	}

	valid, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected verifyProof type %T", out[0])
	}
	return valid, nil
}

func (c *evmClient) UpdateRoot(ctx context.Context, contract string, root string) (string, error) {
	if c.key == nil {
		return "", domain.ErrRootUpdateUnsupported
	}
	if !common.IsHexAddress(contract) {
		return "", fmt.Errorf("%w: invalid contract address %q", domain.ErrInvalidInput, contract)
	}

	digest, err := parseHash(root)
	if err != nil {
		return "", err
	}

	data, err := c.abi.Pack("updateRoot", [32]byte(digest))
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	from := crypto.PubkeyToAddress(c.key.PublicKey)
	to := common.HexToAddress(contract)

	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to suggest gas price: %w", err)
	}

	gas, err := c.client.EstimateGas(ctx, ethereum.CallMsg{From: from, To: &to, Data: data})
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    big.NewInt(0),
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.NewEIP155Signer(c.chainID), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	txHash := signed.Hash().Hex()
	logger.InfoCtx(ctx, "Root update submitted",
		zap.String("contract", contract),
		zap.String("root", root),
		zap.String("txHash", txHash),
		zap.Uint64("nonce", nonce))

	return txHash, nil
}
