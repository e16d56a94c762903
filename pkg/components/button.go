package components

import (
	"context"
	"io"
)

// Button renders a <button>. Content, when set, replaces Text.
type Button struct {
	Element
	Text string
	// Type is the button's type attribute, "button" unless changed.
	Type string
}

// NewButton returns a small primary button labelled text.
func NewButton(text string) *Button {
	b := &Button{Text: text, Type: "button"}
	b.init("Button")
	b.AddClass("btn btn-primary btn-sm")
	b.addDebugFields(func(d *Debugger) { d.Set("Text", b.Text) })
	return b
}

func (b *Button) Render(ctx context.Context, w io.Writer) error {
	if !b.Visible {
		return nil
	}
	attrs := b.ControlAttributes()
	delete(attrs, "readonly")
	if b.Type != "" {
		attrs["type"] = b.Type
	}

	hw := &htmlWriter{ctx: ctx, w: w}
	hw.open("button", attrs)
	if b.Content != nil {
		hw.component(ctx, b.Content)
	} else {
		hw.text(b.Text)
	}
	hw.close("button")
	return hw.err
}
