package onchain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/merkle"
)

// rootAccount is the distributor program's state account
type rootAccount struct {
	Discriminator [8]byte
	Root          [32]byte
	Version       uint64
}

const rootAccountSize = 8 + 32 + 8

type svmClient struct {
	rpc        adapter.SolanaRPC
	commitment rpc.CommitmentType
}

// NewSVMClient creates a client that reads the distributor state account of a Solana program.
// Proofs are checked against the root read from chain; root updates are not supported.
func NewSVMClient(client adapter.SolanaRPC) Client {
	return &svmClient{rpc: client, commitment: rpc.CommitmentConfirmed}
}

func (c *svmClient) readAccount(ctx context.Context, account string) (*rootAccount, error) {
	pub, err := solana.PublicKeyFromBase58(account)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid account %q: %v", domain.ErrInvalidInput, account, err)
	}

	res, err := c.rpc.GetAccountInfoWithOpts(ctx, pub, &rpc.GetAccountInfoOpts{Commitment: c.commitment})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return &rootAccount{}, nil
		}
		return nil, fmt.Errorf("failed to get account info: %w", err)
	}
	if res == nil || res.Value == nil || res.Value.Data == nil {
		return &rootAccount{}, nil
	}

	return decodeRootAccount(res.Value.Data.GetBinary())
}

func decodeRootAccount(data []byte) (*rootAccount, error) {
	if len(data) < rootAccountSize {
		return nil, fmt.Errorf("root account too short: %d bytes", len(data))
	}

	var acc rootAccount
	if err := bin.NewBorshDecoder(data[:rootAccountSize]).Decode(&acc); err != nil {
		return nil, fmt.Errorf("failed to decode root account: %w", err)
	}
	return &acc, nil
}

func (c *svmClient) GetRoot(ctx context.Context, account string) (string, error) {
	acc, err := c.readAccount(ctx, account)
	if err != nil {
		return "", err
	}
	return common.Hash(acc.Root).Hex(), nil
}

func (c *svmClient) GetVersion(ctx context.Context, account string) (uint64, error) {
	acc, err := c.readAccount(ctx, account)
	if err != nil {
		return 0, err
	}
	return acc.Version, nil
}

func (c *svmClient) UpdateRoot(_ context.Context, _ string, _ string) (string, error) {
	return "", domain.ErrRootUpdateUnsupported
}

func (c *svmClient) VerifyProof(ctx context.Context, account string, siblings []string, beneficiaryID, token, amount string) (bool, error) {
	if _, err := parseHashes(siblings); err != nil {
		return false, err
	}

	acc, err := c.readAccount(ctx, account)
	if err != nil {
		return false, err
	}
	onChainRoot := common.Hash(acc.Root)
	if onChainRoot == merkle.ZeroRoot {
		return false, nil
	}

	computed, ok := merkle.ComputeRoot(merkle.LeafHashString(beneficiaryID, token, amount), siblings)
	if !ok {
		return false, nil
	}
	return computed == onChainRoot, nil
}
