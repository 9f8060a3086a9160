package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/merkle"
)

// balancesFile is the snapshot format read by build and proof and written by snapshot
type balancesFile struct {
	Chain    domain.Chain     `json:"chain,omitempty"`
	Token    string           `json:"token"`
	Balances []domain.Balance `json:"balances"`
}

var BuildCmd = cli.Command{
	Action:    doBuild,
	Name:      "build",
	Usage:     "build a tree from a balances file and print its root",
	ArgsUsage: "<balances file>",
	Flags: []cli.Flag{
		&tokenFlag,
	},
}

var ProofCmd = cli.Command{
	Action:    doProof,
	Name:      "proof",
	Usage:     "print the inclusion proof of one beneficiary",
	ArgsUsage: "<balances file> <beneficiary id>",
	Flags: []cli.Flag{
		&tokenFlag,
	},
}

var VerifyCmd = cli.Command{
	Action:    doVerify,
	Name:      "verify",
	Usage:     "verify a proof file against a root",
	ArgsUsage: "<proof file>",
	Flags: []cli.Flag{
		&rootFlag,
	},
}

type buildOutput struct {
	Token     string `json:"token"`
	Root      string `json:"root"`
	LeafCount int    `json:"leaf_count"`
}

func doBuild(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("missing balances file parameter")
	}
	tree, err := loadTree(ctx.Args().Get(0), ctx.String(tokenFlag.Name))
	if err != nil {
		return err
	}

	return printJSON(ctx, buildOutput{
		Token:     tree.Token(),
		Root:      tree.RootHex(),
		LeafCount: tree.LeafCount(),
	})
}

func doProof(ctx *cli.Context) error {
	if ctx.Args().Len() != 2 {
		return fmt.Errorf("expected balances file and beneficiary id parameters")
	}
	tree, err := loadTree(ctx.Args().Get(0), ctx.String(tokenFlag.Name))
	if err != nil {
		return err
	}

	beneficiaryID := ctx.Args().Get(1)
	proof := tree.Proof(beneficiaryID)
	if proof == nil {
		return fmt.Errorf("%s has no balance in the tree", beneficiaryID)
	}
	return printJSON(ctx, proof)
}

func doVerify(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("missing proof file parameter")
	}
	data, err := os.ReadFile(ctx.Args().Get(0))
	if err != nil {
		return fmt.Errorf("failed to read proof file: %w", err)
	}

	var proof merkle.Proof
	if err := json.Unmarshal(data, &proof); err != nil {
		return fmt.Errorf("failed to parse proof file: %w", err)
	}

	root := ctx.String(rootFlag.Name)
	if !merkle.VerifyProof(&proof, root) {
		return fmt.Errorf("%w: %s does not resolve to %s", domain.ErrProofVerificationFailed, proof.BeneficiaryID, root)
	}

	_, err = fmt.Fprintf(ctx.App.Writer, "valid: %s %s %s\n", proof.BeneficiaryID, proof.Token, proof.Amount.StringFixed(domain.AMOUNT_DECIMALS))
	return err
}

func loadTree(path string, token string) (*merkle.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balances file: %w", err)
	}

	var file balancesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse balances file: %w", err)
	}

	if token == "" {
		token = file.Token
	}
	if token == "" {
		return nil, fmt.Errorf("no token in balances file, use --%s", tokenFlag.Name)
	}

	seen := make(map[string]struct{}, len(file.Balances))
	for _, b := range file.Balances {
		if b.BeneficiaryID == "" || !b.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: balance of %q must be positive", domain.ErrInvalidInput, b.BeneficiaryID)
		}
		if _, ok := seen[b.BeneficiaryID]; ok {
			return nil, fmt.Errorf("%w: duplicate beneficiary %q", domain.ErrInvalidInput, b.BeneficiaryID)
		}
		seen[b.BeneficiaryID] = struct{}{}
	}

	return merkle.NewTree(token, file.Balances), nil
}

func printJSON(ctx *cli.Context, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(data))
	return err
}
