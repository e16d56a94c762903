package components

import (
	"context"
	"io"

	"thirdcoast.systems/hydra/pkg/utils/markdown"
)

// Markdown renders sanitized markdown, typically help text under a control.
type Markdown struct {
	Element
	Source *markdown.Markdown
}

func NewMarkdown(source string) *Markdown {
	m := &Markdown{Source: markdown.New(source)}
	m.init("Markdown")
	m.AddClass("form-text")
	return m
}

func (m *Markdown) Render(ctx context.Context, w io.Writer) error {
	if !m.Visible {
		return nil
	}
	attrs := m.Attributes()

	hw := &htmlWriter{ctx: ctx, w: w}
	hw.open("div", attrs)
	hw.raw(string(m.Source.Render()))
	hw.close("div")
	return hw.err
}
