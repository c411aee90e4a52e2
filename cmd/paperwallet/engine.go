package main

import (
	"fmt"

	"github.com/AlexZinkM/paper-wallet/bitcoin"
	"github.com/AlexZinkM/paper-wallet/internal/config"
	"github.com/AlexZinkM/paper-wallet/internal/engine"
	"github.com/AlexZinkM/paper-wallet/solana"
)

// newEngine returns the wallet engine for the configured network
func newEngine(cfg *config.Config) (engine.Engine, error) {
	switch cfg.Network {
	case config.NetworkSolana:
		return solana.NewEngine(cfg.AddressCount, nil), nil
	case config.NetworkBitcoin:
		return bitcoin.NewEngine(cfg.AddressCount, cfg.Testnet, nil), nil
	default:
		return nil, fmt.Errorf("unsupported network %q", cfg.Network)
	}
}
