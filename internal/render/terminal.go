package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlexZinkM/paper-wallet/internal/common"

	"github.com/skip2/go-qrcode"
)

const (
	addressLineWidth    = 44
	privateKeyLineWidth = 59
)

// Terminal writes sections as text with half-block QR codes.
// Scale is ignored: every module is one character wide.
type Terminal struct {
	w io.Writer
}

// NewTerminal creates a Terminal writing to w
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) AppendSection(s Section) error {
	var b strings.Builder
	switch s.Kind {
	case KindAddress:
		fmt.Fprintf(&b, "== %s [%s]\n", s.Label, s.Target)
		fmt.Fprintf(&b, "%s\n", common.SplitIntoLines(s.Address, addressLineWidth))
	default:
		b.WriteString(strings.Repeat("-", privateKeyLineWidth) + "\n")
		fmt.Fprintf(&b, "== %s [%s]\n", s.Label, s.Target)
		fmt.Fprintf(&b, "%s\n", common.SplitIntoLines(s.PrivateKey, privateKeyLineWidth))
		fmt.Fprintf(&b, "Address: %s\n", s.Address)
		fmt.Fprintf(&b, "HD Key: %s, path: %s\n", s.Seed.HDSeed, s.Seed.Path)
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *Terminal) DrawCode(target, payload string, _ CodeOptions) error {
	art, err := QRText(payload)
	if err != nil {
		return fmt.Errorf("failed to draw %s: %w", target, err)
	}
	_, err = fmt.Fprintf(t.w, "%s\n\n", art)
	return err
}

// QRText renders payload as a QR code of half-block characters, two rows per line
func QRText(payload string) (string, error) {
	qr, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	bitmap := qr.Bitmap()
	rows := len(bitmap)

	var b strings.Builder
	for y := 0; y < rows; y += 2 {
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bottom := y+1 < rows && bitmap[y+1][x]
			switch {
			case top && bottom:
				b.WriteString("█")
			case top:
				b.WriteString("▀")
			case bottom:
				b.WriteString("▄")
			default:
				b.WriteString(" ")
			}
		}
		if y+2 < rows {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
