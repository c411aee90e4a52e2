// Package session holds the state of one paper wallet page from load to unload.
package session

import (
	"sync"

	"github.com/AlexZinkM/paper-wallet/internal/engine"
	"github.com/AlexZinkM/paper-wallet/internal/entropy"
	"github.com/AlexZinkM/paper-wallet/internal/render"
	"github.com/AlexZinkM/paper-wallet/internal/trigger"
)

// Snapshot is the observable entropy and dialog state of a session
type Snapshot struct {
	Progress         float64
	Length           int
	State            entropy.State
	TriggerStyle     entropy.Style
	IndicatorSuccess bool
	DialogVisible    bool
}

// Session serialises every event on one page. All methods are safe for concurrent use.
type Session struct {
	ID string

	mu        sync.Mutex
	collector *entropy.Collector
	page      *render.Page
	renderer  *render.WalletRenderer
	trigger   *trigger.Trigger
}

// New creates a session whose confirmation dialog is already displayed
func New(id string, e engine.Engine) *Session {
	c := entropy.NewCollector()
	page := render.NewPage()
	r := render.NewWalletRenderer(page)

	s := &Session{
		ID:        id,
		collector: c,
		page:      page,
		renderer:  r,
		trigger:   trigger.New(c, e, r),
	}
	s.trigger.Show()
	return s
}

// ObservePointer feeds a pointer movement to the entropy collector
func (s *Session) ObservePointer(x, y int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collector.ObservePointer(x, y)
	return s.snapshot()
}

// ObserveKey feeds a key press to the entropy collector
func (s *Session) ObserveKey(code int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collector.ObserveKey(code)
	return s.snapshot()
}

// Snapshot returns the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Progress:         s.collector.Progress(),
		Length:           s.collector.Len(),
		State:            s.collector.State(),
		TriggerStyle:     s.collector.TriggerStyle(),
		IndicatorSuccess: s.collector.IndicatorSuccess(),
		DialogVisible:    s.trigger.Visible(),
	}
}

// Show displays the confirmation dialog again, starting a new generation cycle
func (s *Session) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trigger.Show()
}

// Dismiss forwards a dismissal request to the confirmation dialog
func (s *Session) Dismiss(reason trigger.Reason) (*trigger.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trigger.Dismiss(reason)
}

// Confirm hides the dialog, generating and rendering wallets
func (s *Session) Confirm() (*trigger.Result, error) {
	return s.Dismiss(trigger.ReasonConfirm)
}

// Sections returns every section rendered since the last Clear
func (s *Session) Sections() []render.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.Sections()
}

// Code returns the QR PNG drawn onto target
func (s *Session) Code(target string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.Code(target)
}

// Clear removes rendered sections. Section ids keep increasing afterwards
// and the entropy buffer is untouched.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page.Clear()
}

// WithPage runs fn with exclusive access to the rendered page
func (s *Session) WithPage(fn func(p *render.Page) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.page)
}
