package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Grid renders Items as table rows.
type Grid[T any] struct {
	Element
	Items []T
	// Header is rendered inside <thead> when set.
	Header templ.Component
	// Row renders one item as a <tr>.
	Row func(T) templ.Component
	// EmptyText is shown in a single row when Items is empty.
	EmptyText string
}

func NewGrid[T any](row func(T) templ.Component) *Grid[T] {
	g := &Grid[T]{Row: row}
	g.init("Grid")
	g.AddClass("table table-sm")
	g.addDebugFields(func(d *Debugger) { d.Set("Items", len(g.Items)) })
	return g
}

func (g *Grid[T]) Render(ctx context.Context, w io.Writer) error {
	if !g.Visible {
		return nil
	}
	attrs := g.Attributes()

	hw := &htmlWriter{ctx: ctx, w: w}
	hw.open("table", attrs)
	if g.Header != nil {
		hw.raw("<thead>")
		hw.component(ctx, g.Header)
		hw.raw("</thead>")
	}
	hw.raw("<tbody>")
	if len(g.Items) == 0 && g.EmptyText != "" {
		hw.raw("<tr><td>")
		hw.text(g.EmptyText)
		hw.raw("</td></tr>")
	}
	if g.Row != nil {
		for _, item := range g.Items {
			hw.component(ctx, g.Row(item))
		}
	}
	hw.raw("</tbody>")
	hw.close("table")
	return hw.err
}

// HeaderRow renders a <tr> of <th> cells.
func HeaderRow(titles ...string) templ.Component {
	return cellRow("th", titles)
}

// TextRow renders a <tr> of escaped <td> cells.
func TextRow(cells ...string) templ.Component {
	return cellRow("td", cells)
}

func cellRow(tag string, cells []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{ctx: ctx, w: w}
		hw.raw("<tr>")
		for _, c := range cells {
			hw.raw("<" + tag + ">")
			hw.text(c)
			hw.raw("</" + tag + ">")
		}
		hw.raw("</tr>")
		return hw.err
	})
}
