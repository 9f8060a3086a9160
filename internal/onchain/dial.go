package onchain

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/logger"
)

// DialConfig holds the endpoints of every chain a process talks to.
// A chain with an empty RPC URL gets no client.
type DialConfig struct {
	EVMRPCURL     string
	EVMChainID    int64
	EVMPrivateKey string
	SVMRPCURL     string
}

// Dial connects to the configured chains and returns a registry holding their clients.
// The returned func closes the underlying connections.
func Dial(ctx context.Context, cfg DialConfig, ethDialer adapter.EthClientDialer, newSolanaRPC func(endpoint string) adapter.SolanaRPC) (*Registry, func(), error) {
	registry := NewRegistry()
	closers := []func(){}
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if cfg.EVMRPCURL != "" {
		ethClient, err := ethDialer.Dial(ctx, cfg.EVMRPCURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to dial EVM RPC: %w", err)
		}
		closers = append(closers, ethClient.Close)

		evm, err := NewEVMClient(ethClient, EVMConfig{ChainID: cfg.EVMChainID, PrivateKey: cfg.EVMPrivateKey})
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		registry.Register(domain.ChainEVM, evm)
		logger.InfoCtx(ctx, "Registered EVM client",
			zap.Int64("chainID", cfg.EVMChainID),
			zap.Bool("canPublish", cfg.EVMPrivateKey != ""))
	}

	if cfg.SVMRPCURL != "" {
		registry.Register(domain.ChainSVM, NewSVMClient(newSolanaRPC(cfg.SVMRPCURL)))
		logger.InfoCtx(ctx, "Registered SVM client")
	}

	if len(registry.Chains()) == 0 {
		logger.WarnCtx(ctx, "No on-chain client configured, claims and root publishing are unavailable")
	}

	return registry, closeAll, nil
}
