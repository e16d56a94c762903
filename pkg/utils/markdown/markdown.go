// Package markdown renders help and description text attached to UI elements.
// Output is always passed through a bluemonday policy before it reaches a page.
package markdown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// Markdown wraps markdown source and caches its sanitized rendering.
type Markdown struct {
	// Source is the markdown source text.
	Source string
	// renderedHTML caches the sanitized HTML rendered from Source.
	renderedHTML *template.HTML
}

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank | blackfriday.Smartypants | blackfriday.SmartypantsDashes,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Tables | blackfriday.FencedCode | blackfriday.Autolink | blackfriday.Strikethrough | blackfriday.SpaceHeadings | blackfriday.NoEmptyLineBeforeBlock
	policy       = bluemonday.UGCPolicy()
	stripPolicy  = bluemonday.StrictPolicy()
)

// New returns a Markdown for source.
func New(source string) *Markdown {
	return &Markdown{Source: source}
}

func run(source string) []byte {
	return blackfriday.Run([]byte(source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
}

// Render converts the Markdown Source into sanitized HTML.
func (m *Markdown) Render() template.HTML {
	if m == nil || m.Source == "" {
		return ""
	}
	if m.renderedHTML != nil {
		return *m.renderedHTML
	}

	safe := policy.SanitizeBytes(run(m.Source))
	html := template.HTML(bytes.TrimSpace(safe))
	m.renderedHTML = &html
	return html
}

// PlainText renders the source and strips every tag, leaving readable text.
func (m *Markdown) PlainText() string {
	if m == nil || m.Source == "" {
		return ""
	}
	return string(bytes.TrimSpace(stripPolicy.SanitizeBytes(run(m.Source))))
}

// Render is shorthand for New(source).Render().
func Render(source string) template.HTML {
	return New(source).Render()
}

// MarshalJSON encodes the markdown as its source string.
func (m Markdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Source)
}

// UnmarshalJSON implements json.Unmarshaler so Markdown can be decoded from JSON.
func (m *Markdown) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Markdown.UnmarshalJSON: %w", err)
	}
	m.Source = s
	m.renderedHTML = nil
	return nil
}
