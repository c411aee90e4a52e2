package render_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/paper-wallet/internal/model"
	"github.com/AlexZinkM/paper-wallet/internal/render"
)

func TestPageRender(t *testing.T) {
	page := render.NewPage()
	r := render.NewWalletRenderer(page)

	_, err := r.Render(model.WalletSet{{
		Address:    "addr1",
		PrivateKey: "pk1",
		Seed:       model.Seed{HDSeed: "seed1", Path: "m/0"},
	}})
	require.NoError(t, err)

	sections := page.Sections()
	require.Len(t, sections, 2)
	for _, s := range sections {
		img, err := png.Decode(bytes.NewReader(page.Code(s.Target)))
		require.NoError(t, err, s.Target)
		require.Greater(t, img.Bounds().Dx(), 0)
	}

	var buf bytes.Buffer
	require.NoError(t, page.WriteHTML(&buf, "Paper Wallet"))
	html := buf.String()
	require.Contains(t, html, `id="qrcode_addr_0"`)
	require.Contains(t, html, `id="qrcode_pk_0"`)
	require.Contains(t, html, "HD Key: seed1, path: m/0")
	require.Contains(t, html, "data:image/png;base64,")
	require.Equal(t, 1, strings.Count(html, `class="address-section"`))
	require.Equal(t, 1, strings.Count(html, `class="pk-section"`))
}

func TestPageAddressCodeLargerThanPrivateKeyScale(t *testing.T) {
	addr, err := render.EncodePNG("same payload", render.AddressScale)
	require.NoError(t, err)
	pk, err := render.EncodePNG("same payload", render.PrivateKeyScale)
	require.NoError(t, err)

	a, err := png.Decode(bytes.NewReader(addr))
	require.NoError(t, err)
	p, err := png.Decode(bytes.NewReader(pk))
	require.NoError(t, err)
	require.Greater(t, a.Bounds().Dx(), p.Bounds().Dx())
}

func TestPageDrawUnknownTarget(t *testing.T) {
	page := render.NewPage()
	err := page.DrawCode("addr_7", "addr", render.CodeOptions{Scale: 1})
	require.Error(t, err)
}

func TestPageEscapesText(t *testing.T) {
	page := render.NewPage()
	r := render.NewWalletRenderer(page)
	_, err := r.Render(model.WalletSet{{Address: "<script>", PrivateKey: "pk"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, page.WriteHTML(&buf, "t"))
	require.NotContains(t, buf.String(), "<script>")
}

func TestPageClearKeepsRendererCounter(t *testing.T) {
	page := render.NewPage()
	r := render.NewWalletRenderer(page)

	_, err := r.Render(walletSet(2))
	require.NoError(t, err)
	page.Clear()
	require.Empty(t, page.Sections())

	_, err = r.Render(walletSet(1))
	require.NoError(t, err)
	sections := page.Sections()
	require.Len(t, sections, 2)
	require.Equal(t, "addr_2", sections[0].Target)
	require.Nil(t, page.Code("addr_0"))
}

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewWalletRenderer(render.NewTerminal(&buf))

	_, err := r.Render(model.WalletSet{{
		Address:    "addr1",
		PrivateKey: "pk1",
		Seed:       model.Seed{HDSeed: "seed1", Path: "m/0"},
	}})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "== Address [addr_0]")
	require.Contains(t, out, "== Private Key [pk_0]")
	require.Contains(t, out, "HD Key: seed1, path: m/0")
	require.Contains(t, out, "█")
}

func TestQRText(t *testing.T) {
	art, err := render.QRText("hello")
	require.NoError(t, err)
	lines := strings.Split(art, "\n")
	require.Greater(t, len(lines), 5)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		require.Equal(t, width, len([]rune(l)))
	}
}
