package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/commitment"
	"github.com/feral-file/ff-referral/internal/config"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/ledger"
	"github.com/feral-file/ff-referral/internal/merkle"
	"github.com/feral-file/ff-referral/internal/onchain"
	"github.com/feral-file/ff-referral/internal/store"
)

var SnapshotCmd = cli.Command{
	Action: doSnapshot,
	Name:   "snapshot",
	Usage:  "rebuild the tree from the ledger and compare it with the stored and on-chain roots",
	Flags: []cli.Flag{
		&chainFlag,
		&cli.StringFlag{
			Name:     tokenFlag.Name,
			Usage:    "token symbol",
			Required: true,
		},
		&outFlag,
		&configFlag,
		&envFlag,
	},
}

type snapshotReport struct {
	Chain         domain.Chain `json:"chain"`
	Token         string       `json:"token"`
	Root          string       `json:"root"`
	LeafCount     int          `json:"leaf_count"`
	StoredRoot    string       `json:"stored_root,omitempty"`
	StoredVersion uint64       `json:"stored_version,omitempty"`
	OnchainRoot   string       `json:"onchain_root,omitempty"`
	// UpToDate reports whether the ledger moved since the stored root
	UpToDate bool `json:"up_to_date"`
}

func doSnapshot(cliCtx *cli.Context) error {
	chain, err := domain.ParseChain(cliCtx.String(chainFlag.Name))
	if err != nil {
		return err
	}
	token := cliCtx.String(tokenFlag.Name)

	config.ChdirRepoRoot()
	cfg, err := config.LoadMerkleToolConfig(cliCtx.String(configFlag.Name), cliCtx.String(envFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		return err
	}
	dataStore := store.NewPGStore(db)

	ctx := cliCtx.Context
	registry, closeChains, err := onchain.Dial(ctx, onchain.DialConfig{
		EVMRPCURL:  cfg.Onchain.EVM.RPCURL,
		EVMChainID: cfg.Onchain.EVM.ChainID,
		SVMRPCURL:  cfg.Onchain.SVM.RPCURL,
	}, adapter.NewEthClientDialer(), adapter.NewSolanaRPC)
	if err != nil {
		return err
	}
	defer closeChains()

	aggregator := ledger.NewAggregator(dataStore)
	roots := commitment.NewBuilder(commitment.Config{Contracts: cfg.Onchain.Contracts()}, dataStore, aggregator, registry)

	balances, err := aggregator.GetUnclaimedBalances(ctx, chain, token)
	if err != nil {
		return err
	}
	tree := merkle.NewTree(token, balances)

	report := snapshotReport{
		Chain:     chain,
		Token:     token,
		Root:      tree.RootHex(),
		LeafCount: tree.LeafCount(),
	}

	stored, err := roots.GetLatestRoot(ctx, chain, token)
	switch {
	case errors.Is(err, domain.ErrNoRootGenerated):
	case err != nil:
		return err
	case stored != nil:
		report.StoredRoot = stored.Root
		report.StoredVersion = stored.Version
		report.UpToDate = stored.Root == report.Root
	}

	if contract, ok := cfg.Onchain.Contracts()[chain]; ok {
		report.OnchainRoot, err = readOnchainRoot(ctx, registry, chain, contract, cfg.Onchain.VerifyTimeout)
		if err != nil {
			return err
		}
	}

	if out := cliCtx.String(outFlag.Name); out != "" {
		data, err := json.MarshalIndent(balancesFile{Chain: chain, Token: token, Balances: tree.Balances()}, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0600); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}

	return printJSON(cliCtx, report)
}

func readOnchainRoot(ctx context.Context, registry *onchain.Registry, chain domain.Chain, contract string, timeout time.Duration) (string, error) {
	client, err := registry.Client(chain)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.GetRoot(ctx, contract)
}
