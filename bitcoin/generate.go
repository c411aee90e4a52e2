// Package bitcoin derives transparent (P2PKH) paper wallets from secp256k1 keys.
package bitcoin

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/AlexZinkM/paper-wallet/internal/engine"
	"github.com/AlexZinkM/paper-wallet/internal/model"

	"github.com/btcsuite/btcd/btcec/v2"
)

const (
	networkBitcoin = "bitcoin"
	streamInfo     = "paper-wallet bitcoin keys"
)

// Engine generates independent (non-HD) secp256k1 keys. Records carry empty seed metadata.
type Engine struct {
	count   int
	testnet bool
	random  io.Reader
}

var _ engine.Engine = (*Engine)(nil)

// NewEngine creates an Engine producing count addresses per call.
// random defaults to crypto/rand.Reader when nil.
func NewEngine(count int, testnet bool, random io.Reader) *Engine {
	if random == nil {
		random = rand.Reader
	}
	return &Engine{count: count, testnet: testnet, random: random}
}

func (e *Engine) GetWallet(entropy string) (string, error) {
	return e.generate(entropy, e.count)
}

func (e *Engine) Greet() (string, error) {
	return e.generate("", 1)
}

func (e *Engine) generate(entropy string, count int) (string, error) {
	stream, err := engine.KeyStream(e.random, entropy, streamInfo)
	if err != nil {
		return "", err
	}

	set := make(model.WalletSet, 0, count)
	var raw [32]byte
	defer clear(raw[:])
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(stream, raw[:]); err != nil {
			return "", fmt.Errorf("failed to read key material: %w", err)
		}
		privKey, pubKey := btcec.PrivKeyFromBytes(raw[:])
		set = append(set, model.WalletRecord{
			Type:       networkBitcoin,
			Address:    DeriveAddress(pubKey, e.testnet),
			PrivateKey: PrivateKeyToWIF(privKey, e.testnet),
		})
		privKey.Zero()
	}

	b, err := json.Marshal(set)
	if err != nil {
		return "", fmt.Errorf("failed to marshal wallet set: %w", err)
	}
	return string(b), nil
}
