package bitcoin

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

const (
	mainnetPubKeyHash = 0x00
	testnetPubKeyHash = 0x6f
	mainnetWIF        = 0x80
	testnetWIF        = 0xef
)

// DeriveAddress creates a P2PKH address from the compressed public key.
// Address = Base58Check(version + HASH160(pubkey))
func DeriveAddress(pubKey *btcec.PublicKey, testnet bool) string {
	version := byte(mainnetPubKeyHash)
	if testnet {
		version = testnetPubKeyHash
	}

	data := make([]byte, 0, 21)
	data = append(data, version)
	data = append(data, hash160(pubKey.SerializeCompressed())...)
	return Base58CheckEncode(data)
}

// PrivateKeyToWIF converts a private key to compressed Wallet Import Format.
// WIF = Base58Check(version + privKey + 0x01)
func PrivateKeyToWIF(privKey *btcec.PrivateKey, testnet bool) string {
	data := make([]byte, 34)
	data[0] = mainnetWIF
	if testnet {
		data[0] = testnetWIF
	}
	copy(data[1:33], privKey.Serialize())
	data[33] = 0x01
	defer clear(data)

	return Base58CheckEncode(data)
}

// Base58CheckEncode appends the first 4 bytes of double SHA256 and encodes to base58
func Base58CheckEncode(data []byte) string {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])

	full := make([]byte, 0, len(data)+4)
	full = append(full, data...)
	full = append(full, second[:4]...)
	return base58.Encode(full)
}

// hash160 computes RIPEMD160(SHA256(data))
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}
