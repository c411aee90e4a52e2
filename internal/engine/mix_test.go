package engine

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func readN(t *testing.T, r io.Reader, n int) []byte {
	t.Helper()
	out := make([]byte, n)
	_, err := io.ReadFull(r, out)
	require.NoError(t, err)
	return out
}

func TestDoubleSHA256(t *testing.T) {
	// sha256(sha256("")) is a well known constant
	require.Equal(t,
		"5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
		hex.EncodeToString(DoubleSHA256(nil)))
}

func TestKeyStreamDeterministicForSameInputs(t *testing.T) {
	secret := bytes.Repeat([]byte{7}, secretLen)

	a, err := KeyStream(bytes.NewReader(secret), "abc", "info")
	require.NoError(t, err)
	b, err := KeyStream(bytes.NewReader(secret), "abc", "info")
	require.NoError(t, err)
	require.Equal(t, readN(t, a, 64), readN(t, b, 64))
}

func TestKeyStreamDependsOnEntropy(t *testing.T) {
	secret := bytes.Repeat([]byte{7}, secretLen)

	a, err := KeyStream(bytes.NewReader(secret), "abc", "info")
	require.NoError(t, err)
	b, err := KeyStream(bytes.NewReader(secret), "abd", "info")
	require.NoError(t, err)
	require.NotEqual(t, readN(t, a, 32), readN(t, b, 32))
}

func TestKeyStreamShortRandom(t *testing.T) {
	_, err := KeyStream(bytes.NewReader([]byte{1, 2, 3}), "", "info")
	require.Error(t, err)
}
