package engine

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const secretLen = 32

// DoubleSHA256 returns sha256(sha256(b))
func DoubleSHA256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// KeyStream returns a byte stream mixing secretLen bytes read from random
// with the user entropy. User entropy only salts the stream; it never
// replaces the system randomness.
func KeyStream(random io.Reader, entropy, info string) (io.Reader, error) {
	secret := make([]byte, secretLen)
	if _, err := io.ReadFull(random, secret); err != nil {
		return nil, fmt.Errorf("failed to read random secret: %w", err)
	}
	defer clear(secret)

	return hkdf.New(sha256.New, secret, DoubleSHA256([]byte(entropy)), []byte(info)), nil
}
