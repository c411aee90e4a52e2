// Package render turns wallet sets into printable sections with QR codes.
package render

import (
	"fmt"

	"github.com/AlexZinkM/paper-wallet/internal/model"
)

const (
	AddressScale    = 5.5
	PrivateKeyScale = 3.5
)

// Kind identifies the half of a wallet a section shows
type Kind string

const (
	KindAddress    Kind = "address"
	KindPrivateKey Kind = "private_key"
)

// Section is one visual block of a paper wallet
type Section struct {
	Kind       Kind
	ID         int
	Label      string
	Target     string // drawing target for the QR code
	Address    string
	PrivateKey string
	Seed       model.Seed
}

// CodeOptions controls QR code output size
type CodeOptions struct {
	Scale float64 // pixels per module
}

// Sink is the output surface sections are appended to
type Sink interface {
	AppendSection(s Section) error
	DrawCode(target, payload string, opts CodeOptions) error
}

// AddressTarget returns the drawing target of the address section with the given id
func AddressTarget(id int) string {
	return fmt.Sprintf("addr_%d", id)
}

// PrivateKeyTarget returns the drawing target of the private key section with the given id
func PrivateKeyTarget(id int) string {
	return fmt.Sprintf("pk_%d", id)
}

// WalletRenderer appends two sections per wallet record to a Sink.
// Section ids keep increasing across Render calls and are never reused.
type WalletRenderer struct {
	sink Sink
	next int
}

// NewWalletRenderer creates a WalletRenderer writing to sink
func NewWalletRenderer(sink Sink) *WalletRenderer {
	return &WalletRenderer{sink: sink}
}

// Next returns the id the next rendered record will get
func (r *WalletRenderer) Next() int {
	return r.next
}

// Render appends the address and private key sections of every record in order.
// It returns the number of records rendered before any error.
func (r *WalletRenderer) Render(set model.WalletSet) (int, error) {
	for i, rec := range set {
		if err := r.renderRecord(rec); err != nil {
			return i, err
		}
	}
	return len(set), nil
}

func (r *WalletRenderer) renderRecord(rec model.WalletRecord) error {
	id := r.next
	r.next++

	addr := Section{
		Kind:    KindAddress,
		ID:      id,
		Label:   addressLabel(rec.Type),
		Target:  AddressTarget(id),
		Address: rec.Address,
	}
	if err := r.sink.AppendSection(addr); err != nil {
		return fmt.Errorf("failed to append address section %d: %w", id, err)
	}
	if err := r.sink.DrawCode(addr.Target, rec.Address, CodeOptions{Scale: AddressScale}); err != nil {
		return fmt.Errorf("failed to draw %s: %w", addr.Target, err)
	}

	pk := Section{
		Kind:       KindPrivateKey,
		ID:         id,
		Label:      "Private Key",
		Target:     PrivateKeyTarget(id),
		Address:    rec.Address,
		PrivateKey: rec.PrivateKey,
		Seed:       rec.Seed,
	}
	if err := r.sink.AppendSection(pk); err != nil {
		return fmt.Errorf("failed to append private key section %d: %w", id, err)
	}
	if err := r.sink.DrawCode(pk.Target, rec.PrivateKey, CodeOptions{Scale: PrivateKeyScale}); err != nil {
		return fmt.Errorf("failed to draw %s: %w", pk.Target, err)
	}
	return nil
}

func addressLabel(walletType string) string {
	switch walletType {
	case "solana":
		return "Address (Solana)"
	case "bitcoin":
		return "Address (Bitcoin)"
	default:
		return "Address"
	}
}
