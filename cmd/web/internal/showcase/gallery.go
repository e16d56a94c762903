// Package showcase builds the component gallery rendered by the web server.
// A Gallery is rebuilt for every request from the Settings the browser
// sends, so nothing here is shared between requests.
package showcase

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"thirdcoast.systems/hydra/internal/services/httpclient"
	"thirdcoast.systems/hydra/pkg/components"
)

// Settings are the gallery toggles. Field names match the datastar signals.
type Settings struct {
	Disabled      bool   `json:"disabled"`
	ReadOnly      bool   `json:"readOnly"`
	ClassOverride string `json:"classOverride"`
	StyleOverride string `json:"styleOverride"`
	Strict        bool   `json:"strict"`
	Inspect       string `json:"inspect"`
}

// Section is one gallery entry.
type Section struct {
	Key       string
	Title     string
	Element   *components.Element
	Component templ.Component
}

type Gallery struct {
	Settings Settings
	Sections []Section
	Debugger *components.Debugger
}

const sampleMarkdown = "Rendered from **markdown** with a [link](https://example.com).\n\n<script>alert(1)</script>"

var titleCaser = cases.Title(language.English)

func sectionTitle(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "-", " "))
}

// Build assembles the gallery. widgets feeds the grid and may be nil.
func Build(s Settings, widgets *httpclient.Table) *Gallery {
	g := &Gallery{Settings: s, Debugger: components.NewDebugger()}

	button := components.NewButton("Save")
	g.add("button", &button.Element, button)

	text := components.NewTextInput()
	text.Placeholder = "Type here"
	text.FieldName = "name"
	text.SetValue("Hydra")
	g.add("text-input", &text.Element, text)

	check := components.NewCheckbox()
	check.FieldName = "subscribed"
	check.SetValue(true)
	g.add("checkbox", &check.Element, check)

	date := components.NewInput[string](components.InputDate)
	date.Label = "Due date"
	date.SetValue("2025-06-01")
	g.add("date-input", &date.Element, date)

	area := components.NewTextArea()
	area.SetValue("Multi-line\ntext")
	g.add("text-area", &area.Element, area)

	dropdown := components.NewDropdownList()
	dropdown.FieldName = "size"
	dropdown.SetOptionsWithPlaceholder(true,
		components.DropdownOption{Key: "s", Value: "Small"},
		components.DropdownOption{Key: "m", Value: "Medium"},
		components.DropdownOption{Key: "l", Value: "Large"},
	)
	dropdown.SelectByKey("m")
	g.add("dropdown", &dropdown.Element, dropdown)

	label := components.NewLabelFor(&text.Element, "Name")
	g.add("label", &label.Element, label)

	spinner := components.NewSpinner()
	g.add("spinner", &spinner.Element, spinner)

	grid := components.NewGrid(func(row map[string]any) templ.Component {
		return components.TextRow(cast.ToString(row["name"]), cast.ToString(row["size"]))
	})
	grid.Header = components.HeaderRow("Name", "Size")
	grid.EmptyText = "No widgets"
	if widgets != nil {
		grid.Items = widgets.Rows
	}
	g.add("grid", &grid.Element, grid)

	md := components.NewMarkdown(sampleMarkdown)
	g.add("markdown", &md.Element, md)

	g.inspect()
	return g
}

func (g *Gallery) add(key string, e *components.Element, c templ.Component) {
	e.Disabled = g.Settings.Disabled
	e.ReadOnly = g.Settings.ReadOnly
	e.CSSClass = g.Settings.ClassOverride
	e.CSSStyle = g.Settings.StyleOverride
	e.StrictStyles = g.Settings.Strict

	g.Sections = append(g.Sections, Section{
		Key:       key,
		Title:     sectionTitle(key),
		Element:   e,
		Component: c,
	})
}

// Inspected returns the section whose element feeds the debugger. An unknown
// key falls back to the first section.
func (g *Gallery) Inspected() Section {
	for _, s := range g.Sections {
		if s.Key == g.Settings.Inspect {
			return s
		}
	}
	return g.Sections[0]
}

func (g *Gallery) inspect() {
	sec := g.Inspected()
	sec.Element.Debugger = g.Debugger
	sec.Element.FillDebugger()
}
