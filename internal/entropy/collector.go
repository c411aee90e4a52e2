// Package entropy accumulates user-supplied randomness as a hex string.
package entropy

import (
	"strconv"
	"strings"
)

const (
	// TargetBytes is the amount of entropy, in bytes, that fills the progress bar.
	// The buffer holds hex, so 2 characters are counted per byte.
	TargetBytes = 32

	// PointerSampleRate keeps one pointer event out of every PointerSampleRate.
	PointerSampleRate = 5
)

// State is the collection state of a Collector
type State string

const (
	StateCollecting State = "collecting"
	StateReady      State = "ready"
)

// Style is the visual state of the generate control
type Style string

const (
	StyleWarning Style = "warning"
	StyleSuccess Style = "success"
)

// Collector accumulates hex characters from pointer and keyboard events.
// It is not safe for concurrent use; callers serialise events.
type Collector struct {
	buf          strings.Builder
	pointerCount int

	triggerStyle     Style
	indicatorSuccess bool

	// OnReady is called once, the first time progress reaches 100.
	OnReady func()
}

// NewCollector creates an empty Collector in the collecting state
func NewCollector() *Collector {
	return &Collector{triggerStyle: StyleWarning}
}

// ObservePointer records a pointer movement at (x, y) and returns the progress.
// Only the 1st, 6th, 11th, ... call contributes one hex digit (x+y) mod 16.
func (c *Collector) ObservePointer(x, y int) float64 {
	n := c.pointerCount
	c.pointerCount++
	if n%PointerSampleRate > 0 {
		return c.Progress()
	}

	d := (x + y) % 16
	if d < 0 {
		d += 16
	}
	c.buf.WriteString(strconv.FormatInt(int64(d), 16))
	return c.Progress()
}

// ObserveKey records a key press with the given character code and returns the progress.
// Codes 16..31 (mod 32) append two hex digits.
func (c *Collector) ObserveKey(code int) float64 {
	v := code % 32
	if v < 0 {
		v += 32
	}
	c.buf.WriteString(strconv.FormatInt(int64(v), 16))
	return c.Progress()
}

// Progress returns the saturating percentage of TargetBytes collected so far.
func (c *Collector) Progress() float64 {
	p := ProgressOf(c.buf.Len())
	if p >= 100 {
		c.markReady()
	}
	return p
}

// ProgressOf returns min(100, length/2/TargetBytes*100)
func ProgressOf(length int) float64 {
	p := float64(length) / 2 / TargetBytes * 100
	if p > 100 {
		return 100
	}
	return p
}

func (c *Collector) markReady() {
	fired := false
	if c.triggerStyle == StyleWarning {
		c.triggerStyle = StyleSuccess
		fired = true
	}
	if !c.indicatorSuccess {
		c.indicatorSuccess = true
		fired = true
	}
	if fired && c.OnReady != nil {
		c.OnReady()
	}
}

// Entropy returns the accumulated hex string
func (c *Collector) Entropy() string {
	return c.buf.String()
}

// Len returns the number of hex characters collected
func (c *Collector) Len() int {
	return c.buf.Len()
}

// State returns StateReady once progress has reached 100
func (c *Collector) State() State {
	if c.indicatorSuccess {
		return StateReady
	}
	return StateCollecting
}

// TriggerStyle returns the visual state of the generate control
func (c *Collector) TriggerStyle() Style {
	return c.triggerStyle
}

// IndicatorSuccess reports whether the progress indicator carries the success adornment
func (c *Collector) IndicatorSuccess() bool {
	return c.indicatorSuccess
}
