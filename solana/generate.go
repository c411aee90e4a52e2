package solana

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/AlexZinkM/paper-wallet/internal/engine"
	"github.com/AlexZinkM/paper-wallet/internal/model"

	"github.com/gagliardetto/solana-go"
)

const (
	networkSolana = "solana"
	hdSeedLen     = 32
	streamInfo    = "paper-wallet solana hd seed"
)

// Engine derives Solana wallets from one HD seed per call
type Engine struct {
	count  int
	random io.Reader
}

var _ engine.Engine = (*Engine)(nil)

// NewEngine creates an Engine producing count addresses per call.
// random defaults to crypto/rand.Reader when nil.
func NewEngine(count int, random io.Reader) *Engine {
	if random == nil {
		random = rand.Reader
	}
	return &Engine{count: count, random: random}
}

// GetWallet derives e.count addresses at m/44'/501'/i'/0' from a fresh HD seed
func (e *Engine) GetWallet(entropy string) (string, error) {
	set, err := e.generate(entropy, e.count)
	if err != nil {
		return "", err
	}
	return marshal(set)
}

// Greet returns one address generated without user entropy
func (e *Engine) Greet() (string, error) {
	set, err := e.generate("", 1)
	if err != nil {
		return "", err
	}
	return marshal(set)
}

func (e *Engine) generate(entropy string, count int) (model.WalletSet, error) {
	stream, err := engine.KeyStream(e.random, entropy, streamInfo)
	if err != nil {
		return nil, err
	}

	seed := make([]byte, hdSeedLen)
	if _, err := io.ReadFull(stream, seed); err != nil {
		return nil, fmt.Errorf("failed to read HD seed: %w", err)
	}
	defer clear(seed)

	set := make(model.WalletSet, 0, count)
	for i := 0; i < count; i++ {
		rec, err := walletAt(seed, i)
		if err != nil {
			return nil, err
		}
		set = append(set, rec)
	}
	return set, nil
}

// walletAt derives the Solana wallet at account index i
func walletAt(seed []byte, i int) (model.WalletRecord, error) {
	path := DerivationPath(i)
	child, err := DeriveKey(seed, path)
	if err != nil {
		return model.WalletRecord{}, err
	}
	defer clear(child)

	wallet := solana.PrivateKey(ed25519.NewKeyFromSeed(child))
	defer clear(wallet)

	return model.WalletRecord{
		Type:       networkSolana,
		Address:    wallet.PublicKey().String(),
		PrivateKey: wallet.String(),
		Seed: model.Seed{
			HDSeed: hex.EncodeToString(seed),
			Path:   path,
		},
	}, nil
}

func marshal(set model.WalletSet) (string, error) {
	b, err := json.Marshal(set)
	if err != nil {
		return "", fmt.Errorf("failed to marshal wallet set: %w", err)
	}
	return string(b), nil
}
