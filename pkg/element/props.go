package element

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// ChildrenKey is the props key holding a composite's children.
const ChildrenKey = "children"

// Props is the property bag a composite is invoked with.
type Props map[string]any

// Clone returns a shallow copy of p. Cloning a nil Props yields an empty,
// writable map.
func (p Props) Clone() Props {
	out := make(Props, len(p)+1)
	maps.Copy(out, p)
	return out
}

// With returns a copy of p with key set to value.
func (p Props) With(key string, value any) Props {
	out := p.Clone()
	out[key] = value
	return out
}

// String returns the value under key as a string. Strings (including named
// string types) are returned as-is, numbers and booleans are formatted,
// anything else yields "".
func (p Props) String(key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v)
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			return rv.String()
		}
		return ""
	}
}

// StringMap returns the value under key as a map of strings. Both
// map[string]string and map[string]any values are accepted; the result is a
// copy and nil when the key is absent or empty.
func (p Props) StringMap(key string) map[string]string {
	switch v := p[key].(type) {
	case map[string]string:
		if len(v) == 0 {
			return nil
		}
		return maps.Clone(v)
	case map[string]any:
		if len(v) == 0 {
			return nil
		}
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = fmt.Sprint(val)
		}
		return out
	default:
		return nil
	}
}

// Children returns the children stored under [ChildrenKey]. Element values
// are returned directly; a []Element is returned as a [Fragment]; other
// values are wrapped in a [Leaf].
func (p Props) Children() Element {
	switch v := p[ChildrenKey].(type) {
	case nil:
		return nil
	case Element:
		return v
	case []Element:
		return Fragment(v)
	default:
		return Leaf{Value: v}
	}
}

// Keys returns the prop names in sorted order.
func (p Props) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}
