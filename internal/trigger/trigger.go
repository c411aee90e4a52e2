// Package trigger owns the confirmation dialog that starts wallet generation.
package trigger

import (
	"errors"

	"github.com/AlexZinkM/paper-wallet/internal/engine"
	"github.com/AlexZinkM/paper-wallet/internal/entropy"
	"github.com/AlexZinkM/paper-wallet/internal/model"
	"github.com/AlexZinkM/paper-wallet/internal/render"
)

// ErrNotVisible is returned when the dialog is dismissed while already hidden
var ErrNotVisible = errors.New("confirmation dialog is not visible")

// Reason is the way a dismissal was requested
type Reason int

const (
	ReasonConfirm Reason = iota
	ReasonEscape
	ReasonBackdrop
)

func (r Reason) String() string {
	switch r {
	case ReasonConfirm:
		return "confirm"
	case ReasonEscape:
		return "escape"
	case ReasonBackdrop:
		return "backdrop"
	default:
		return "unknown"
	}
}

// Result describes one completed generation
type Result struct {
	Set      model.WalletSet
	FirstID  int // section id of the first rendered record
	Rendered int
}

// Trigger shows the confirmation dialog and, once it is hidden, generates
// wallets from the collected entropy and renders them.
type Trigger struct {
	collector *entropy.Collector
	engine    engine.Engine
	renderer  *render.WalletRenderer

	visible bool
	cycles  int
}

// New creates a Trigger with a hidden dialog
func New(c *entropy.Collector, e engine.Engine, r *render.WalletRenderer) *Trigger {
	return &Trigger{collector: c, engine: e, renderer: r}
}

// Show displays the dialog and starts a new display cycle. Showing a visible dialog does nothing.
func (t *Trigger) Show() {
	if t.visible {
		return
	}
	t.visible = true
	t.cycles++
}

// Visible reports whether the dialog is displayed
func (t *Trigger) Visible() bool {
	return t.visible
}

// Cycles returns the number of display cycles started so far
func (t *Trigger) Cycles() int {
	return t.cycles
}

// Confirm is Dismiss(ReasonConfirm)
func (t *Trigger) Confirm() (*Result, error) {
	return t.Dismiss(ReasonConfirm)
}

// Dismiss requests the dialog be hidden. Only ReasonConfirm hides it; other
// reasons are ignored and return (nil, nil). Hiding runs the generation once.
func (t *Trigger) Dismiss(reason Reason) (*Result, error) {
	if reason != ReasonConfirm {
		return nil, nil
	}
	if !t.visible {
		return nil, ErrNotVisible
	}
	t.visible = false
	return t.hidden()
}

// hidden runs once per display cycle, after the dialog is fully hidden
func (t *Trigger) hidden() (*Result, error) {
	set, err := engine.Generate(t.engine, t.collector.Entropy())
	if err != nil {
		return nil, err
	}

	first := t.renderer.Next()
	n, err := t.renderer.Render(set)
	if err != nil {
		return nil, err
	}
	return &Result{Set: set, FirstID: first, Rendered: n}, nil
}
