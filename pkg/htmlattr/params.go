// Package htmlattr serialises keyword-style attribute maps into HTML
// attribute strings.
package htmlattr

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
)

// Attrs holds attribute values keyed by their keyword-style name. Keys may use
// a trailing underscore for reserved words (`class_`, `for_`) and underscores
// after the `data`/`aria` prefixes (`data_toggle`, `aria_describedby`).
type Attrs map[string]any

// Clone returns a shallow copy so callers can add defaults without mutating
// the caller supplied map.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// SetDefault stores value under key unless the key is already present.
func (a Attrs) SetDefault(key string, value any) {
	if _, exists := a[key]; exists {
		return
	}
	a[key] = value
}

// Merge copies every entry from other into a, overwriting existing keys.
func (a Attrs) Merge(other Attrs) {
	for key, value := range other {
		a[key] = value
	}
}

// Has reports whether key resolves to the same attribute as an entry already
// in the map (e.g. `class` and `class_`).
func (a Attrs) Has(key string) bool {
	want := AttributeName(key)
	for existing := range a {
		if AttributeName(existing) == want {
			return true
		}
	}
	return false
}

// String renders the map using Params.
func (a Attrs) String() string {
	return Params(a)
}

// Params generates HTML attribute syntax from attrs. The output is sorted by
// the supplied keys so repeated calls produce identical markup.
//
// Boolean values are special: true renders the bare attribute name (e.g.
// `required`) while false drops the attribute. Nil values are dropped as well.
//
//	Params(Attrs{"name": "text1", "id": "f", "class_": "text"})
//	// class="text" id="f" name="text1"
func Params(attrs Attrs) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		name := AttributeName(key)
		if name == "" {
			continue
		}
		switch value := attrs[key].(type) {
		case nil:
			continue
		case bool:
			if value {
				parts = append(parts, name)
			}
		default:
			parts = append(parts, name+`="`+html.EscapeString(stringify(value))+`"`)
		}
	}
	return strings.Join(parts, " ")
}

// AttributeName converts a keyword-style key into its HTML attribute name.
// Only the reserved-word escapes `class_`, `class__` and `for_` lose their
// trailing underscore; other keys keep it.
func AttributeName(key string) string {
	switch {
	case key == "class_", key == "class__", key == "for_":
		return key[:len(key)-1]
	case strings.HasPrefix(key, "data_"), strings.HasPrefix(key, "aria_"):
		return strings.Replace(key, "_", "-", 1)
	default:
		return key
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
