// Package components provides server-rendered UI element wrappers. Every
// element owns a base class set and style map, exposes its state flags and
// caller overrides as plain fields, and resolves the final class and style
// attributes through pkg/css each time it renders.
//
// Elements are not safe for concurrent mutation. Build them per request (or
// guard them) and render from the goroutine that configured them.
package components

import (
	"context"
	"io"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"thirdcoast.systems/hydra/pkg/css"
)

// Element is the base of every component. The zero value is not ready to
// use; construct with NewElement or a variant constructor.
type Element struct {
	ID    uuid.UUID
	Name  string
	Label string

	Disabled bool
	ReadOnly bool
	Visible  bool

	// CSSClass replaces the base classes when non-blank. State classes are
	// still appended.
	CSSClass string
	// CSSStyle replaces the base styles when non-blank, "key: value; ...".
	CSSStyle string
	// StrictStyles rejects a CSSStyle with a malformed segment as a whole
	// and logs the problem instead of skipping the segment.
	StrictStyles bool

	// Rules replaces css.DefaultStateRules when non-nil.
	Rules []css.StateRule

	Debugger *Debugger

	// Attrs are extra attributes written on the element's root tag. The
	// resolved id, class and style attributes win over entries with the same
	// key, as do disabled and readonly on form controls.
	Attrs templ.Attributes

	// Tag and Content are used when the Element itself is rendered.
	Tag     string
	Content templ.Component

	classes     *css.TokenSet
	styles      *css.StyleMap
	debugFields []func(d *Debugger)
}

// NewElement returns a visible element with a fresh ID.
func NewElement(name string) *Element {
	e := &Element{}
	e.init(name)
	return e
}

func (e *Element) init(name string) {
	e.ID = uuid.New()
	e.Name = name
	e.Visible = true
	e.classes = css.NewTokenSet()
	e.styles = css.NewStyleMap()
}

// addDebugFields registers fn to run at the end of FillDebugger.
func (e *Element) addDebugFields(fn func(d *Debugger)) {
	e.debugFields = append(e.debugFields, fn)
}

// DOMID is the value of the rendered id attribute.
func (e *Element) DOMID() string {
	return "el-" + e.ID.String()
}

// AddClass adds each whitespace-separated token to the base classes.
func (e *Element) AddClass(classes string) {
	if e.classes == nil {
		e.classes = css.NewTokenSet()
	}
	e.classes.Add(classes)
}

// RemoveClass removes each whitespace-separated token from the base classes.
func (e *Element) RemoveClass(classes string) {
	e.classes.Remove(classes)
}

// HasClass reports whether the base classes contain class. Override and
// state classes are not consulted.
func (e *Element) HasClass(class string) bool {
	return e.classes.Contains(class)
}

// AddStyle sets a base style property. A blank value removes it.
func (e *Element) AddStyle(key, value string) {
	if e.styles == nil {
		e.styles = css.NewStyleMap()
	}
	e.styles.Set(key, value)
}

// RemoveStyle removes a base style property.
func (e *Element) RemoveStyle(key string) {
	e.styles.Remove(key)
}

// HasStyle reports whether the base styles define key.
func (e *Element) HasStyle(key string) bool {
	return e.styles.Contains(key)
}

// StyleValue returns the base style value for key.
func (e *Element) StyleValue(key string) (string, bool) {
	return e.styles.Get(key)
}

func (e *Element) input() css.Input {
	return css.Input{
		Disabled:      e.Disabled,
		ReadOnly:      e.ReadOnly,
		ClassOverride: e.CSSClass,
		StyleOverride: e.CSSStyle,
		Classes:       e.classes,
		Styles:        e.styles,
	}
}

func (e *Element) resolver() css.Resolver {
	return css.Resolver{Rules: e.Rules}
}

// Class returns the resolved class attribute from the current configuration.
func (e *Element) Class() string {
	return e.resolver().ResolveClass(e.input())
}

// Style returns the resolved style attribute from the current configuration.
func (e *Element) Style() string {
	r := e.resolver()
	if !e.StrictStyles {
		return r.ResolveStyle(e.input())
	}
	s, err := r.ResolveStyleStrict(e.input())
	if err != nil {
		slog.Warn("style override rejected", "element", e.Name, "id", e.ID, "error", err)
	}
	return s
}

// Snapshot returns the resolution layers for inspection. Its Style is the
// value Style returns.
func (e *Element) Snapshot() css.Snapshot {
	if e.StrictStyles {
		return e.resolver().SnapshotStrict(e.input())
	}
	return e.resolver().Snapshot(e.input())
}

// Attributes returns the attributes of the element's root tag.
func (e *Element) Attributes() templ.Attributes {
	attrs := withAttrs(e.Attrs, templ.Attributes{"id": e.DOMID()})
	if c := e.Class(); c != "" {
		attrs["class"] = c
	} else {
		delete(attrs, "class")
	}
	if s := e.Style(); s != "" {
		attrs["style"] = s
	} else {
		delete(attrs, "style")
	}
	return attrs
}

// ControlAttributes is Attributes plus the disabled and readonly flags, for
// root tags that are form controls.
func (e *Element) ControlAttributes() templ.Attributes {
	attrs := e.Attributes()
	attrs["disabled"] = e.Disabled
	attrs["readonly"] = e.ReadOnly
	return attrs
}

// FillDebugger writes the element's configuration and resolution layers to
// its Debugger, if any.
func (e *Element) FillDebugger() {
	d := e.Debugger
	if d == nil {
		return
	}
	snap := e.Snapshot()

	d.Set("Id", e.ID)
	d.Set("Name", e.Name)
	d.Set("Label", e.Label)
	d.Set("CssClass", e.CSSClass)
	d.Set("CssStyle", e.CSSStyle)
	d.Set("IsDisabled", e.Disabled)
	d.Set("IsReadOnly", e.ReadOnly)
	d.Set("IsVisible", e.Visible)
	d.Set("Base Classes", snap.BaseClasses)
	d.Set("State Classes", snap.StateClasses)
	d.Set("Class", snap.Class)
	d.Set("Base Styles", snap.BaseStyles)
	d.Set("State Styles", snap.StateStyles)
	d.Set("Style", snap.Style)
	if snap.OverrideError != nil {
		d.Set("Style Override Error", snap.OverrideError.Error())
	}
	for _, fn := range e.debugFields {
		fn(d)
	}
}

// Render writes the element as a generic container tag (div by default)
// wrapping Content. Invisible elements render nothing.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	if !e.Visible {
		return nil
	}
	tag := e.Tag
	if tag == "" {
		tag = "div"
	}
	hw := &htmlWriter{ctx: ctx, w: w}
	hw.open(tag, e.Attributes())
	hw.component(ctx, e.Content)
	hw.close(tag)
	return hw.err
}
