package solana

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

const (
	hardenedOffset = 0x80000000
	curveSeedKey   = "ed25519 seed"
)

// DerivationPath returns the Solana account path for the given index
// Example: DerivationPath(0) = "m/44'/501'/0'/0'"
func DerivationPath(index int) string {
	return fmt.Sprintf("m/44'/501'/%d'/0'", index)
}

// DeriveKey derives a 32-byte ed25519 seed from an HD seed along a fully
// hardened path (SLIP-10).
func DeriveKey(seed []byte, path string) ([]byte, error) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	key, chain := masterKey(seed)
	for _, index := range segments {
		key, chain = childKey(key, chain, index)
	}
	return key, nil
}

func masterKey(seed []byte) (key, chain []byte) {
	mac := hmac.New(sha512.New, []byte(curveSeedKey))
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

func childKey(key, chain []byte, index uint32) ([]byte, []byte) {
	data := make([]byte, 0, 37)
	data = append(data, 0x00)
	data = append(data, key...)
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, chain)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// parsePath parses "m/44'/501'/0'" into hardened indexes
func parsePath(path string) ([]uint32, error) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("invalid derivation path %q: must start with m", path)
	}

	out := make([]uint32, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if !strings.HasSuffix(p, "'") {
			return nil, fmt.Errorf("invalid derivation path %q: ed25519 supports hardened segments only", path)
		}
		n, err := strconv.ParseUint(strings.TrimSuffix(p, "'"), 10, 31)
		if err != nil {
			return nil, fmt.Errorf("invalid derivation path %q: %w", path, err)
		}
		out = append(out, uint32(n)+hardenedOffset)
	}
	return out, nil
}
