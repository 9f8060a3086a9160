package merkle

import (
	"bytes"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-referral/internal/domain"
)

// ZeroRoot is the root of an empty tree
var ZeroRoot = common.Hash{}

// Proof is an inclusion proof for one beneficiary balance
type Proof struct {
	BeneficiaryID string          `json:"beneficiary_id"`
	Token         string          `json:"token"`
	Amount        decimal.Decimal `json:"amount"`
	Leaf          string          `json:"leaf"`
	Siblings      []string        `json:"proof"`
}

// Tree is a sorted-pair keccak256 Merkle tree over beneficiary balances
type Tree struct {
	token    string
	balances []domain.Balance
	index    map[string]int
	// layers[0] holds the leaves, the last layer holds the root
	layers [][]common.Hash
}

// LeafHash computes keccak256("beneficiaryId:token:amount") with the amount fixed to 8 decimals
func LeafHash(beneficiaryID, token string, amount decimal.Decimal) common.Hash {
	return LeafHashString(beneficiaryID, token, amount.StringFixed(domain.AMOUNT_DECIMALS))
}

// LeafHashString hashes a leaf whose amount is already formatted with 8 decimals
func LeafHashString(beneficiaryID, token, amount string) common.Hash {
	return crypto.Keccak256Hash([]byte(beneficiaryID + ":" + token + ":" + amount))
}

// Combine hashes two nodes in ascending byte order so the result is order independent
func Combine(a, b common.Hash) common.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Hash(a[:], b[:])
}

// NewTree builds a tree over the given balances.
// Leaves are ordered by beneficiary id; an unpaired node is promoted to the next layer.
func NewTree(token string, balances []domain.Balance) *Tree {
	sorted := make([]domain.Balance, len(balances))
	copy(sorted, balances)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BeneficiaryID < sorted[j].BeneficiaryID
	})

	t := &Tree{
		token:    token,
		balances: sorted,
		index:    make(map[string]int, len(sorted)),
	}

	leaves := make([]common.Hash, len(sorted))
	for i, b := range sorted {
		leaves[i] = LeafHash(b.BeneficiaryID, token, b.Amount)
		t.index[b.BeneficiaryID] = i
	}
	t.layers = [][]common.Hash{leaves}

	current := leaves
	for len(current) > 1 {
		next := make([]common.Hash, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 == len(current) {
				next = append(next, current[i])
				continue
			}
			next = append(next, Combine(current[i], current[i+1]))
		}
		t.layers = append(t.layers, next)
		current = next
	}

	return t
}

// Root returns the root hash, ZeroRoot for an empty tree
func (t *Tree) Root() common.Hash {
	top := t.layers[len(t.layers)-1]
	if len(top) == 0 {
		return ZeroRoot
	}
	return top[0]
}

// RootHex returns the 0x-prefixed hex root
func (t *Tree) RootHex() string {
	return t.Root().Hex()
}

// Token returns the token hashed into every leaf
func (t *Tree) Token() string {
	return t.token
}

// LeafCount returns the number of leaves
func (t *Tree) LeafCount() int {
	return len(t.layers[0])
}

// Balances returns the balances in leaf order
func (t *Tree) Balances() []domain.Balance {
	return t.balances
}

// Proof returns the inclusion proof of a beneficiary or nil when it has no leaf
func (t *Tree) Proof(beneficiaryID string) *Proof {
	idx, ok := t.index[beneficiaryID]
	if !ok {
		return nil
	}

	siblings := make([]string, 0, len(t.layers)-1)
	pos := idx
	for _, layer := range t.layers[:len(t.layers)-1] {
		sibling := pos ^ 1
		if sibling < len(layer) {
			siblings = append(siblings, layer[sibling].Hex())
		}
		pos /= 2
	}

	b := t.balances[idx]
	return &Proof{
		BeneficiaryID: b.BeneficiaryID,
		Token:         t.token,
		Amount:        b.Amount,
		Leaf:          t.layers[0][idx].Hex(),
		Siblings:      siblings,
	}
}

// GenerateProof builds the tree over balances and returns the proof of one beneficiary
func GenerateProof(beneficiaryID, token string, balances []domain.Balance) *Proof {
	return NewTree(token, balances).Proof(beneficiaryID)
}

// ComputeRoot folds the siblings into the leaf and returns the resulting root
func ComputeRoot(leaf common.Hash, siblings []string) (common.Hash, bool) {
	current := leaf
	for _, s := range siblings {
		if !isHash(s) {
			return common.Hash{}, false
		}
		current = Combine(current, common.HexToHash(s))
	}
	return current, true
}

// VerifyProof checks the proof against a hex root.
// The leaf is recomputed from the proof fields so a tampered amount never verifies.
func VerifyProof(proof *Proof, root string) bool {
	if proof == nil || !isHash(root) {
		return false
	}
	leaf := LeafHash(proof.BeneficiaryID, proof.Token, proof.Amount)
	computed, ok := ComputeRoot(leaf, proof.Siblings)
	if !ok {
		return false
	}
	return computed == common.HexToHash(root)
}

// IsZeroRoot reports whether a hex root is the all-zero sentinel
func IsZeroRoot(root string) bool {
	if root == "" {
		return true
	}
	return isHash(root) && common.HexToHash(root) == ZeroRoot
}

func isHash(s string) bool {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if len(s) != 2*common.HashLength {
		return false
	}
	for _, c := range s {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
