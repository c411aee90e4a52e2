// Package rendertest provides a render.Sink that records calls.
package rendertest

import "github.com/AlexZinkM/paper-wallet/internal/render"

// Draw is one recorded DrawCode call
type Draw struct {
	Target  string
	Payload string
	Scale   float64
}

// Recorder records sections and draw calls in order
type Recorder struct {
	Sections []render.Section
	Draws    []Draw

	// DrawErr, if set, is returned by every DrawCode call
	DrawErr error
}

func (r *Recorder) AppendSection(s render.Section) error {
	r.Sections = append(r.Sections, s)
	return nil
}

func (r *Recorder) DrawCode(target, payload string, opts render.CodeOptions) error {
	if r.DrawErr != nil {
		return r.DrawErr
	}
	r.Draws = append(r.Draws, Draw{Target: target, Payload: payload, Scale: opts.Scale})
	return nil
}

// Targets returns the drawn targets in call order
func (r *Recorder) Targets() []string {
	out := make([]string, 0, len(r.Draws))
	for _, d := range r.Draws {
		out = append(out, d.Target)
	}
	return out
}
