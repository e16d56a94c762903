package components

import (
	"context"
	"io"
	"strconv"
)

// TextArea renders a <textarea> bound to a string value.
type TextArea struct {
	ValueElement[string]
	FieldName   string
	Placeholder string
	Rows        int
}

func NewTextArea() *TextArea {
	t := &TextArea{Rows: 3}
	t.init("Text Area")
	t.AddClass("form-control")
	return t
}

func (t *TextArea) Render(ctx context.Context, w io.Writer) error {
	if !t.Visible {
		return nil
	}
	attrs := t.ControlAttributes()
	if t.FieldName != "" {
		attrs["name"] = t.FieldName
	}
	if t.Placeholder != "" {
		attrs["placeholder"] = t.Placeholder
	}
	if t.Rows > 0 {
		attrs["rows"] = strconv.Itoa(t.Rows)
	}

	hw := &htmlWriter{ctx: ctx, w: w}
	hw.open("textarea", attrs)
	hw.text(t.Value)
	hw.close("textarea")
	return hw.err
}
