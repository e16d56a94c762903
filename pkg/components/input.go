package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
)

// InputType is the type attribute of an <input>.
type InputType int

const (
	InputButton InputType = iota
	InputCheckbox
	InputColor
	InputDate
	InputDateTimeLocal
	InputEmail
	InputFile
	InputHidden
	InputImage
	InputMonth
	InputNumber
	InputPassword
	InputRadio
	InputRange
	InputReset
	InputSearch
	InputSubmit
	InputTel
	InputText
	InputTime
	InputURL
	InputWeek
)

var inputTypeNames = [...]string{
	InputButton:        "button",
	InputCheckbox:      "checkbox",
	InputColor:         "color",
	InputDate:          "date",
	InputDateTimeLocal: "datetime-local",
	InputEmail:         "email",
	InputFile:          "file",
	InputHidden:        "hidden",
	InputImage:         "image",
	InputMonth:         "month",
	InputNumber:        "number",
	InputPassword:      "password",
	InputRadio:         "radio",
	InputRange:         "range",
	InputReset:         "reset",
	InputSearch:        "search",
	InputSubmit:        "submit",
	InputTel:           "tel",
	InputText:          "text",
	InputTime:          "time",
	InputURL:           "url",
	InputWeek:          "week",
}

// String returns the HTML attribute value.
func (t InputType) String() string {
	if t < 0 || int(t) >= len(inputTypeNames) {
		return "text"
	}
	return inputTypeNames[t]
}

// ParseInputType accepts an HTML type name in any casing. "datetime_local"
// is accepted as an alias of "datetime-local".
func ParseInputType(s string) (InputType, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range inputTypeNames {
		if n == name {
			return InputType(i), nil
		}
	}
	return InputText, fmt.Errorf("unknown input type %q", s)
}

// Input renders an <input> bound to a typed value.
type Input[T any] struct {
	ValueElement[T]
	Type InputType
	// FieldName is the form field name attribute.
	FieldName   string
	Placeholder string
}

// NewInput returns an input of the given type with the form-control class.
func NewInput[T any](typ InputType) *Input[T] {
	in := &Input[T]{Type: typ}
	in.init("Input")
	in.Label = "Input with value"
	in.AddClass("form-control")
	in.addDebugFields(func(d *Debugger) { d.Set("Type Name", in.Type.String()) })
	return in
}

// NewTextInput returns a text input.
func NewTextInput() *Input[string] {
	in := NewInput[string](InputText)
	in.Name = "Text Input"
	return in
}

// NewCheckbox returns a checkbox input. It submits "true" when checked.
func NewCheckbox() *Input[bool] {
	in := NewInput[bool](InputCheckbox)
	in.Name = "Checkbox"
	return in
}

func (in *Input[T]) Render(ctx context.Context, w io.Writer) error {
	if !in.Visible {
		return nil
	}
	attrs := in.ControlAttributes()
	attrs["type"] = in.Type.String()
	if in.FieldName != "" {
		attrs["name"] = in.FieldName
	}
	if in.Placeholder != "" {
		attrs["placeholder"] = in.Placeholder
	}
	if in.Label != "" {
		attrs["aria-label"] = in.Label
	}

	if in.Type == InputCheckbox {
		attrs["value"] = "true"
		attrs["checked"] = Coerce[bool](any(in.Value))
	} else if v := cast.ToString(any(in.Value)); v != "" {
		attrs["value"] = v
	}

	hw := &htmlWriter{ctx: ctx, w: w}
	hw.open("input", attrs)
	return hw.err
}
