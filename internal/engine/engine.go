// Package engine defines the boundary to the cryptographic engine that
// derives wallet records from user entropy.
package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexZinkM/paper-wallet/internal/model"
)

// Engine derives wallets. Both methods return the serialized JSON array of
// model.WalletRecord.
type Engine interface {
	// GetWallet derives wallet records from an opaque hex entropy string.
	GetWallet(entropy string) (string, error)
	// Greet returns a single default record generated without user entropy.
	Greet() (string, error)
}

// PayloadError is returned when an engine payload is not a JSON array of wallet records
type PayloadError struct {
	Message string
	Err     error
}

func (e *PayloadError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

// IsPayloadError checks if error is PayloadError
func IsPayloadError(err error) bool {
	var pe *PayloadError
	return errors.As(err, &pe)
}

// ParseWalletSet parses an engine payload. The items themselves are not validated.
func ParseWalletSet(payload string) (model.WalletSet, error) {
	trimmed := bytes.TrimSpace([]byte(payload))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &PayloadError{Message: "engine payload is not an array"}
	}

	var set model.WalletSet
	if err := json.Unmarshal(trimmed, &set); err != nil {
		return nil, &PayloadError{Message: "failed to unmarshal engine payload", Err: err}
	}
	return set, nil
}

// Generate calls GetWallet and parses its payload
func Generate(e Engine, entropy string) (model.WalletSet, error) {
	payload, err := e.GetWallet(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return ParseWalletSet(payload)
}

// Func adapts a plain function to the Engine interface. Greet calls it with an empty entropy.
type Func func(entropy string) (string, error)

func (f Func) GetWallet(entropy string) (string, error) {
	return f(entropy)
}

func (f Func) Greet() (string, error) {
	return f("")
}
