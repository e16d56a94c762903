package components

import (
	"context"
	"io"
)

// Label renders a <label> whose text is its Value.
type Label struct {
	ValueElement[string]
	// For is the DOM id of the labelled control.
	For string
}

// NewLabel returns a label with the given text. Labels never carry the
// form-control class that inputs use.
func NewLabel(text string) *Label {
	l := &Label{}
	l.init("Label")
	l.Value = text
	l.AddClass("form-label")
	return l
}

// NewLabelFor returns a label bound to target's DOM id.
func NewLabelFor(target *Element, text string) *Label {
	l := NewLabel(text)
	l.For = target.DOMID()
	return l
}

// AddClass adds base classes, dropping form-control.
func (l *Label) AddClass(classes string) {
	l.Element.AddClass(classes)
	l.Element.RemoveClass("form-control")
}

func (l *Label) Render(ctx context.Context, w io.Writer) error {
	if !l.Visible {
		return nil
	}
	attrs := l.Attributes()
	if l.For != "" {
		attrs["for"] = l.For
	}

	hw := &htmlWriter{ctx: ctx, w: w}
	hw.open("label", attrs)
	hw.text(l.Value)
	hw.close("label")
	return hw.err
}
