package components

import (
	"context"
	"io"

	"github.com/spf13/cast"
)

// DropdownOption is one <option> of a DropdownList.
type DropdownOption struct {
	Key      string
	Value    string
	Selected bool
}

// Text is the option's display text, falling back to Key.
func (o *DropdownOption) Text() string {
	if o.Value != "" {
		return o.Value
	}
	return o.Key
}

func (o *DropdownOption) String() string {
	if o == nil {
		return "null"
	}
	return o.Key + ": " + o.Text()
}

// DropdownList renders a <select>. Its Value is the selected option.
type DropdownList struct {
	ValueElement[*DropdownOption]
	Options []*DropdownOption
	// PlaceholderText labels the empty-key option added by
	// SetOptionsWithPlaceholder.
	PlaceholderText string
	WithPlaceholder bool
	FieldName       string
	// OnSelectedOptionChanged runs after SelectByKey finds a match.
	OnSelectedOptionChanged func(*DropdownOption)
}

func NewDropdownList() *DropdownList {
	d := &DropdownList{PlaceholderText: "Select"}
	d.init("Dropdown List")
	d.AddClass("form-select")
	return d
}

// SetOptions replaces the options, adding a placeholder when
// WithPlaceholder is set.
func (d *DropdownList) SetOptions(opts ...DropdownOption) *DropdownList {
	return d.SetOptionsWithPlaceholder(d.WithPlaceholder, opts...)
}

// SetOptionsWithPlaceholder replaces the options. With a placeholder, the
// placeholder is prepended and selected. Without one, the previously selected
// key stays selected if it is still offered, otherwise the first option is.
func (d *DropdownList) SetOptionsWithPlaceholder(withPlaceholder bool, opts ...DropdownOption) *DropdownList {
	prev := d.Value
	d.Options = make([]*DropdownOption, 0, len(opts)+1)
	d.Value = nil

	if withPlaceholder {
		placeholder := &DropdownOption{Key: "", Value: d.PlaceholderText, Selected: true}
		d.Options = append(d.Options, placeholder)
		d.Value = placeholder
	}
	for _, o := range opts {
		o.Selected = false
		d.Options = append(d.Options, &o)
	}

	if !withPlaceholder && len(d.Options) > 0 {
		next := d.Options[0]
		if prev != nil {
			if o := d.find(prev.Key); o != nil {
				next = o
			}
		}
		d.SelectOption(next)
	}
	return d
}

func (d *DropdownList) find(key string) *DropdownOption {
	for _, o := range d.Options {
		if o.Key == key {
			return o
		}
	}
	return nil
}

// SelectOption marks o as the only selected option without notifying.
func (d *DropdownList) SelectOption(o *DropdownOption) {
	for _, other := range d.Options {
		other.Selected = false
	}
	o.Selected = true
	d.Value = o
}

// SelectByKey selects the option with the given key, then notifies
// OnValueChanged and OnSelectedOptionChanged. Unknown keys are ignored and
// reported as false.
func (d *DropdownList) SelectByKey(key string) bool {
	o := d.find(key)
	if o == nil {
		return false
	}
	d.SelectOption(o)
	d.SetValue(o)
	if d.OnSelectedOptionChanged != nil {
		d.OnSelectedOptionChanged(o)
	}
	return true
}

// Change selects the option whose key equals the raw form value.
func (d *DropdownList) Change(raw any) *DropdownOption {
	d.SelectByKey(cast.ToString(raw))
	return d.Value
}

func (d *DropdownList) Render(ctx context.Context, w io.Writer) error {
	if !d.Visible {
		return nil
	}
	attrs := d.ControlAttributes()
	delete(attrs, "readonly")
	if d.FieldName != "" {
		attrs["name"] = d.FieldName
	}

	hw := &htmlWriter{ctx: ctx, w: w}
	hw.open("select", attrs)
	for _, o := range d.Options {
		hw.open("option", map[string]any{"value": o.Key, "selected": o.Selected})
		hw.text(o.Text())
		hw.close("option")
	}
	hw.close("select")
	return hw.err
}
