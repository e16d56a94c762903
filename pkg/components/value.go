package components

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ValueElement is an Element that carries a typed value.
type ValueElement[T any] struct {
	Element
	Value T
	// OnValueChanged runs after every SetValue or Change.
	OnValueChanged func(T)
}

func (v *ValueElement[T]) init(name string) {
	v.Element.init(name)
	v.addDebugFields(func(d *Debugger) { d.Set("Value", v.Value) })
}

// SetValue stores val, notifies OnValueChanged and refreshes the Debugger.
func (v *ValueElement[T]) SetValue(val T) T {
	v.Value = val
	if v.OnValueChanged != nil {
		v.OnValueChanged(val)
	}
	if v.Debugger != nil {
		v.Debugger.Clear()
		v.FillDebugger()
	}
	return val
}

// Change coerces a raw form value into T and stores it with SetValue.
func (v *ValueElement[T]) Change(raw any) T {
	return v.SetValue(Coerce[T](raw))
}

// Coerce converts a raw form value to T. A value that cannot be converted
// yields the zero value of T. Booleans only accept a bool or the string
// "true" in any casing.
func Coerce[T any](raw any) T {
	var zero T
	var (
		out any
		err error
	)
	switch any(zero).(type) {
	case bool:
		out = coerceBool(raw)
	case string:
		out, err = cast.ToStringE(raw)
	case int:
		out, err = cast.ToIntE(raw)
	case int32:
		out, err = cast.ToInt32E(raw)
	case int64:
		out, err = cast.ToInt64E(raw)
	case uint:
		out, err = cast.ToUintE(raw)
	case float32:
		out, err = cast.ToFloat32E(raw)
	case float64:
		out, err = cast.ToFloat64E(raw)
	case time.Time:
		out, err = cast.ToTimeE(raw)
	case time.Duration:
		out, err = cast.ToDurationE(raw)
	default:
		if v, ok := raw.(T); ok {
			return v
		}
		return zero
	}
	if err != nil {
		return zero
	}
	v, ok := out.(T)
	if !ok {
		return zero
	}
	return v
}

func coerceBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}
