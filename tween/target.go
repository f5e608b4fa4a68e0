package tween

import (
	"reflect"

	"github.com/lucasb-eyer/go-colorful"
)

// Props is a snapshot of property values keyed by name.
type Props map[string]any

func (p Props) clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// A Target is an object whose named properties a Tween reads and writes.
// Implementations must be comparable (typically pointers) so that the registry
// can find every tween driving a given target.
type Target interface {
	Get(name string) (any, bool)
	Set(name string, value any)
}

// Values is a map-backed Target.
type Values struct {
	props Props
}

// NewValues creates a Values target seeded with a copy of initial.
func NewValues(initial Props) *Values {
	v := new(Values)
	v.props = initial.clone()
	return v
}

// Get returns the current value of a property.
func (v *Values) Get(name string) (any, bool) {
	val, ok := v.props[name]
	return val, ok
}

// Set assigns a property.
func (v *Values) Set(name string, value any) {
	v.props[name] = value
}

// Float returns a numeric property as float64, or 0 if it is missing or not numeric.
func (v *Values) Float(name string) float64 {
	f, _ := number(v.props[name])
	return f
}

// Props returns a copy of all current values.
func (v *Values) Props() Props {
	return v.props.clone()
}

type fieldTarget struct {
	ptr any
}

// Fields adapts a pointer to a struct into a Target over its exported fields.
// Writes are converted to the field's type when possible and ignored otherwise.
func Fields(ptr any) Target {
	return fieldTarget{ptr: ptr}
}

func (f fieldTarget) field(name string) (reflect.Value, bool) {
	v := reflect.ValueOf(f.ptr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, false
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	fv := v.FieldByName(name)
	if !fv.IsValid() || !fv.CanSet() {
		return reflect.Value{}, false
	}
	return fv, true
}

func (f fieldTarget) Get(name string) (any, bool) {
	fv, ok := f.field(name)
	if !ok {
		return nil, false
	}
	return fv.Interface(), true
}

func (f fieldTarget) Set(name string, value any) {
	fv, ok := f.field(name)
	if !ok || value == nil {
		return
	}
	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(fv.Type()) {
		fv.Set(rv)
	} else if rv.Type().ConvertibleTo(fv.Type()) {
		fv.Set(rv.Convert(fv.Type()))
	}
}

// number reports whether v holds a Go numeric kind and returns it as float64.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// interpolate computes the value between v0 and v1 at ratio. Numbers are blended
// linearly, colours in HCL space. Anything else holds v0 until ratio reaches 1.
func interpolate(v0, v1 any, ratio float64) any {
	if f0, ok := number(v0); ok {
		if f1, ok := number(v1); ok && f0 != f1 {
			return f0 + (f1-f0)*ratio
		}
	}
	if c0, ok := v0.(colorful.Color); ok {
		if c1, ok := v1.(colorful.Color); ok && c0 != c1 {
			switch {
			case ratio <= 0:
				return c0
			case ratio >= 1:
				return c1
			}
			return c0.BlendHcl(c1, ratio)
		}
	}
	if ratio >= 1 {
		return v1
	}
	return v0
}
