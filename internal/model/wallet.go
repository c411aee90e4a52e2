package model

// Seed represents HD seed metadata used to derive a wallet record
type Seed struct {
	HDSeed string `json:"HDSeed"`
	Path   string `json:"path"`
}

// WalletRecord represents one derived address with its private key
type WalletRecord struct {
	Type       string `json:"type,omitempty"` // "solana" or "bitcoin"
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
	Seed       Seed   `json:"seed"`
}

// WalletSet is the ordered result of one engine call. Order is render order.
type WalletSet []WalletRecord
