package adapter

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SolanaRPC defines the Solana RPC calls used to read program accounts
//
//go:generate mockgen -source=solana.go -destination=../mocks/solana_rpc.go -package=mocks -mock_names=SolanaRPC=MockSolanaRPC
type SolanaRPC interface {
	// GetAccountInfoWithOpts returns the account data at the requested commitment
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
}

// NewSolanaRPC creates a JSON-RPC client for the endpoint
func NewSolanaRPC(endpoint string) SolanaRPC {
	return rpc.New(endpoint)
}
