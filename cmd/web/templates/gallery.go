package templates

import (
	"encoding/json"

	"github.com/a-h/templ"

	"thirdcoast.systems/hydra/cmd/web/internal/showcase"
	"thirdcoast.systems/hydra/cmd/web/viewtypes"
	c "thirdcoast.systems/hydra/pkg/components"
)

const (
	GalleryID  = "gallery"
	DebuggerID = "debugger"
)

func check(signal, label string) templ.Component {
	return c.Tag("label", templ.Attributes{"class": "form-label"},
		c.Tag("input", templ.Attributes{"type": "checkbox", "data-bind": signal}),
		c.Text(" "+label),
	)
}

func field(signal, label, placeholder string) templ.Component {
	return c.Group(
		c.Tag("label", templ.Attributes{"class": "form-label"}, c.Text(label)),
		c.Tag("input", templ.Attributes{
			"type":        "text",
			"class":       viewtypes.InputClass,
			"placeholder": placeholder,
			"data-bind":   signal,
		}),
	)
}

func controls(g *showcase.Gallery) templ.Component {
	opts := make([]templ.Component, 0, len(g.Sections))
	for _, s := range g.Sections {
		opts = append(opts, c.Tag("option", templ.Attributes{"value": s.Key}, c.Text(s.Title)))
	}

	return c.Tag("form", templ.Attributes{
		"class":                         viewtypes.SectionCard,
		"data-on:change":                "@post('/showcase/state')",
		"data-on:input__debounce.400ms": "@post('/showcase/state')",
		"data-on:submit__prevent":       "@post('/showcase/state')",
	},
		check("disabled", "Disabled"),
		c.Text(" "),
		check("readOnly", "Read-only"),
		c.Text(" "),
		check("strict", "Strict style overrides"),
		field("classOverride", "Class override", "e.g. card shadow"),
		field("styleOverride", "Style override", "e.g. color: red; border: 1px solid"),
		c.Tag("label", templ.Attributes{"class": "form-label"}, c.Text("Inspect")),
		c.Tag("select", templ.Attributes{"class": "form-select", "data-bind": "inspect"}, opts...),
	)
}

// GalleryBody is the patch target for state changes.
func GalleryBody(g *showcase.Gallery) templ.Component {
	sections := make([]templ.Component, 0, len(g.Sections))
	for _, s := range g.Sections {
		sections = append(sections, c.Tag("section", templ.Attributes{"class": viewtypes.SectionCard},
			c.Tag("div", templ.Attributes{"class": viewtypes.SectionLabel}, c.Text(s.Title)),
			s.Component,
		))
	}
	return c.Tag("div", templ.Attributes{"id": GalleryID, "class": "col"}, sections...)
}

// DebuggerTable lists the debugger entries in insertion order.
func DebuggerTable(d *c.Debugger) templ.Component {
	rows := make([]templ.Component, 0)
	for _, e := range d.Snapshot() {
		rows = append(rows, c.TextRow(e.Key, e.Value))
	}
	return c.Tag("div", templ.Attributes{"id": DebuggerID, "class": "col"},
		c.Tag("table", templ.Attributes{"class": "table table-sm"},
			c.Tag("thead", nil, c.HeaderRow("Key", "Value")),
			c.Tag("tbody", nil, rows...),
		),
	)
}

// GalleryPage is the full gallery body. The initial signals mirror g's
// settings.
func GalleryPage(g *showcase.Gallery) templ.Component {
	signals, _ := json.Marshal(g.Settings)
	return c.Tag("main", templ.Attributes{"data-signals": string(signals)},
		c.Tag("h1", templ.Attributes{"class": viewtypes.PageHeading}, c.Text("Component gallery")),
		controls(g),
		c.Tag("div", templ.Attributes{"class": "row"},
			GalleryBody(g),
			DebuggerTable(g.Debugger),
		),
		c.Tag("div", templ.Attributes{
			"data-init": "@get('/showcase/debugger')",
		}),
	)
}
