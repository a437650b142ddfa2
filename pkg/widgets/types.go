package widgets

import (
	"strconv"
	"strings"
)

// InputType describes the `<input>` flavour a row renders.
type InputType struct {
	Name string
	// HideValue suppresses the current value in the markup (passwords).
	HideValue bool
	// Checkable inputs submit CheckedValue when ticked; the field value only
	// decides whether they start checked.
	Checkable bool
}

// CheckedValue is submitted by checkable inputs.
const CheckedValue = "true"

// Built-in input types.
var (
	Text     = InputType{Name: "text"}
	Password = InputType{Name: "password", HideValue: true}
	Email    = InputType{Name: "email"}
	Search   = InputType{Name: "search"}
	Tel      = InputType{Name: "tel"}
	URL      = InputType{Name: "url"}
	Number   = InputType{Name: "number"}
	Date     = InputType{Name: "date"}
	Hidden   = InputType{Name: "hidden"}
	Checkbox = InputType{Name: "checkbox", Checkable: true}
)

var builtinTypes = map[string]InputType{
	Text.Name:     Text,
	Password.Name: Password,
	Email.Name:    Email,
	Search.Name:   Search,
	Tel.Name:      Tel,
	URL.Name:      URL,
	Number.Name:   Number,
	Date.Name:     Date,
	Hidden.Name:   Hidden,
	Checkbox.Name: Checkbox,
}

// LookupType returns the built-in input type for name. Unknown names yield a
// plain descriptor so custom types still render.
func LookupType(name string) InputType {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return Text
	}
	if typ, ok := builtinTypes[trimmed]; ok {
		return typ
	}
	return InputType{Name: trimmed}
}

// Checked reports whether a field value marks a checkable input as ticked.
// Values accepted by strconv.ParseBool plus "on" and "yes" count.
func Checked(value string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "on" || trimmed == "yes" {
		return true
	}
	checked, err := strconv.ParseBool(trimmed)
	return err == nil && checked
}
