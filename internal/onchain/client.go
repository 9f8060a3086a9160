package onchain

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/feral-file/ff-referral/internal/domain"
)

//go:generate mockgen -source=client.go -destination=../mocks/onchain_client.go -package=mocks -mock_names=Client=MockOnChainClient

// Client is the on-chain side of the claim distributor contract
type Client interface {
	// GetRoot returns the committed root as 0x hex, domain.ZERO_ROOT when the contract was never initialised
	GetRoot(ctx context.Context, contract string) (string, error)

	// GetVersion returns the committed root version
	GetVersion(ctx context.Context, contract string) (uint64, error)

	// UpdateRoot submits a new root and returns the transaction handle
	UpdateRoot(ctx context.Context, contract string, root string) (string, error)

	// VerifyProof asks the chain whether the proof resolves to its committed root
	VerifyProof(ctx context.Context, contract string, siblings []string, beneficiaryID, token, amount string) (bool, error)
}

// Registry maps a chain family to its client
type Registry struct {
	mu      sync.RWMutex
	clients map[domain.Chain]Client
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{clients: make(map[domain.Chain]Client)}
}

// Register sets the client of a chain, replacing any previous one
func (r *Registry) Register(chain domain.Chain, client Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[chain] = client
}

// Client returns the client of a chain
func (r *Registry) Client(chain domain.Chain) (Client, error) {
	if !domain.IsValidChain(chain) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidChain, chain)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[chain]
	if !ok {
		return nil, fmt.Errorf("no on-chain client configured for chain %s", chain)
	}
	return c, nil
}

// Chains lists the chains that have a client
func (r *Registry) Chains() []domain.Chain {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chains := make([]domain.Chain, 0, len(r.clients))
	for c := range r.clients {
		chains = append(chains, c)
	}
	return chains
}

// parseHash decodes a 0x-prefixed 32-byte digest
func parseHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: invalid digest %q: %v", domain.ErrInvalidInput, s, err)
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: digest %q is %d bytes", domain.ErrInvalidInput, s, len(b))
	}
	return common.BytesToHash(b), nil
}

func parseHashes(siblings []string) ([]common.Hash, error) {
	hashes := make([]common.Hash, 0, len(siblings))
	for _, s := range siblings {
		h, err := parseHash(s)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}
