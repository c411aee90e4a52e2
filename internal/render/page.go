package render

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"math"

	"github.com/skip2/go-qrcode"
)

// Page collects sections and QR code images for a printable HTML document.
// Drawing a target before its section has been appended fails.
type Page struct {
	sections []Section
	codes    map[string][]byte
}

// NewPage creates an empty Page
func NewPage() *Page {
	return &Page{codes: make(map[string][]byte)}
}

func (p *Page) AppendSection(s Section) error {
	p.sections = append(p.sections, s)
	p.codes[s.Target] = nil
	return nil
}

func (p *Page) DrawCode(target, payload string, opts CodeOptions) error {
	if _, ok := p.codes[target]; !ok {
		return fmt.Errorf("drawing target %q not found", target)
	}
	png, err := EncodePNG(payload, opts.Scale)
	if err != nil {
		return err
	}
	p.codes[target] = png
	return nil
}

// Sections returns the appended sections in order
func (p *Page) Sections() []Section {
	out := make([]Section, len(p.sections))
	copy(out, p.sections)
	return out
}

// Code returns the PNG drawn onto target, or nil
func (p *Page) Code(target string) []byte {
	return p.codes[target]
}

// Clear removes all sections and codes
func (p *Page) Clear() {
	p.sections = nil
	p.codes = make(map[string][]byte)
}

// EncodePNG draws payload as a QR code PNG with scale pixels per module
func EncodePNG(payload string, scale float64) ([]byte, error) {
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	modules := len(qr.Bitmap())
	size := int(math.Ceil(scale * float64(modules)))

	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}

type pageSection struct {
	Section
	QR template.URL
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
.fixed-width { font-family: monospace; word-break: break-all; }
.address-section, .pk-section { display: flex; gap: 2em; align-items: center; }
.h-dashed { border-top: 1px dashed #000; margin: 1em 0; }
.h-divider { border-top: 2px solid #000; margin: 2em 0; page-break-after: always; }
</style>
</head>
<body>
<div id="wallet">
{{- range .Sections}}
{{- if eq .Kind "address"}}
<div class="address-section">
  <div><h1>{{.Label}}</h1><p class="fixed-width">{{.Address}}</p></div>
  <div><img id="qrcode_{{.Target}}" src="{{.QR}}" alt="{{.Target}}"></div>
</div>
{{- else}}
<div class="h-dashed"></div>
<div class="pk-section">
  <div><img id="qrcode_{{.Target}}" src="{{.QR}}" alt="{{.Target}}"></div>
  <div>
    <h1>{{.Label}}</h1><p class="fixed-width">{{.PrivateKey}}</p>
    <h2>Address</h2><p class="fixed-width">{{.Address}}</p>
    <code>HD Key: {{.Seed.HDSeed}}, path: {{.Seed.Path}}</code>
  </div>
</div>
<div class="h-divider"></div>
{{- end}}
{{- end}}
</div>
</body>
</html>
`))

// WriteHTML renders the page as a standalone HTML document
func (p *Page) WriteHTML(w io.Writer, title string) error {
	data := struct {
		Title    string
		Sections []pageSection
	}{Title: title}

	for _, s := range p.sections {
		ps := pageSection{Section: s}
		if png := p.codes[s.Target]; png != nil {
			ps.QR = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
		}
		data.Sections = append(data.Sections, ps)
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
