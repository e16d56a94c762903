package components

import (
	"context"
	"io"
)

// Spinner renders a loading indicator with visually hidden status text.
type Spinner struct {
	Element
	Text string
}

func NewSpinner() *Spinner {
	s := &Spinner{Text: "Loading..."}
	s.init("Spinner")
	s.AddClass("spinner-border spinner-border-sm")
	return s
}

func (s *Spinner) Render(ctx context.Context, w io.Writer) error {
	if !s.Visible {
		return nil
	}
	attrs := s.Attributes()
	attrs["role"] = "status"

	hw := &htmlWriter{ctx: ctx, w: w}
	hw.open("div", attrs)
	hw.raw(`<span class="visually-hidden">`)
	hw.text(s.Text)
	hw.raw(`</span>`)
	hw.close("div")
	return hw.err
}
