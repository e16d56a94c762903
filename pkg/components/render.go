package components

import (
	"context"
	"io"
	"maps"
	"slices"

	"github.com/a-h/templ"
)

// htmlWriter accumulates markup and keeps the first write error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// open writes <tag attrs...> through templ.RenderAttributes, so attribute
// output matches generated templ code: keys sorted, a true bool written bare,
// false bools and nil pointers omitted.
func (hw *htmlWriter) open(tag string, attrs templ.Attributes) {
	hw.raw("<" + tag)
	if hw.err == nil {
		hw.err = templ.RenderAttributes(hw.ctx, hw.w, attrs)
	}
	hw.raw(">")
}

func (hw *htmlWriter) close(tag string) {
	hw.raw("</" + tag + ">")
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// withAttrs copies base and sets extra on the copy.
func withAttrs(base templ.Attributes, extra templ.Attributes) templ.Attributes {
	out := make(templ.Attributes, len(base)+len(extra))
	maps.Copy(out, base)
	maps.Copy(out, extra)
	return out
}

// Tag renders <tag attrs>children</tag> using the same attribute rules as
// the elements.
func Tag(tag string, attrs templ.Attributes, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{ctx: ctx, w: w}
		hw.open(tag, attrs)
		for _, c := range children {
			hw.component(ctx, c)
		}
		hw.close(tag)
		return hw.err
	})
}

// Text renders s escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders children in order. Nil children are skipped.
func Group(children ...templ.Component) templ.Component {
	return templ.Join(slices.DeleteFunc(slices.Clone(children), func(c templ.Component) bool {
		return c == nil
	})...)
}
