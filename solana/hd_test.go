package solana

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// SLIP-10 ed25519 test vector 1
func TestDeriveKeyVectors(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	for _, tt := range []struct {
		path string
		want string
	}{
		{"m", "2b4be7f19ee27bbf30c667b642d5f4aa69fd169872f8fc3059c08ebae2eb19e7"},
		{"m/0'", "68e0fe46dfb67e368c75379acec591dad19df3cde26e63b93a8e704f1dade7a3"},
	} {
		key, err := DeriveKey(seed, tt.path)
		require.NoError(t, err, tt.path)
		require.Equal(t, tt.want, hex.EncodeToString(key), tt.path)
	}
}

func TestDeriveKeyRejectsBadPaths(t *testing.T) {
	seed := make([]byte, 32)
	for _, path := range []string{"", "x/0'", "m/0", "m/44'/abc'", "m/4294967295'"} {
		_, err := DeriveKey(seed, path)
		require.Error(t, err, path)
	}
}

func TestDerivationPath(t *testing.T) {
	require.Equal(t, "m/44'/501'/0'/0'", DerivationPath(0))
	require.Equal(t, "m/44'/501'/7'/0'", DerivationPath(7))
}

func TestDeriveKeyDistinctAccounts(t *testing.T) {
	seed := make([]byte, 32)
	a, err := DeriveKey(seed, DerivationPath(0))
	require.NoError(t, err)
	b, err := DeriveKey(seed, DerivationPath(1))
	require.NoError(t, err)
	require.Len(t, a, 32)
	require.NotEqual(t, a, b)
}
