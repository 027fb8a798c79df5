package action

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"strconv"
)

// Values holds the current value of each prop, keyed by prop name. Values
// usually arrive JSON or YAML decoded, so accessors coerce loosely
type Values map[string]any

// IsSet reports whether name holds a usable value. Nil and empty strings are unset
func (v Values) IsSet(name string) bool {
	value, ok := v[name]
	if !ok || value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return s != ""
	}
	return true
}

// String returns the value of name as a string, or "" when unset
func (v Values) String(name string) string {
	switch value := v[name].(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case json.Number:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

// Int returns the value of name as an integer. ok is false when unset or not integral
func (v Values) Int(name string) (n int64, ok bool) {
	switch value := v[name].(type) {
	case int:
		return int64(value), true
	case int64:
		return value, true
	case float64:
		if value != math.Trunc(value) {
			return 0, false
		}
		return int64(value), true
	case json.Number:
		n, err := value.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(value, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// Strings returns the value of name as a string slice. A single string becomes one element
func (v Values) Strings(name string) []string {
	switch value := v[name].(type) {
	case []string:
		return value
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else if item != nil {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	case string:
		if value == "" {
			return nil
		}
		return []string{value}
	}
	return nil
}

// Clone returns a shallow copy
func (v Values) Clone() Values {
	out := make(Values, len(v))
	maps.Copy(out, v)
	return out
}

// Only returns the set values whose names are listed
func (v Values) Only(names ...string) Values {
	out := make(Values, len(names))
	for _, name := range names {
		if v.IsSet(name) {
			out[name] = v[name]
		}
	}
	return out
}
