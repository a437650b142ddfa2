package model

import (
	"errors"
	"strings"
)

// Unbounded marks an open end on a LengthConstraint.
const Unbounded = -1

// ErrStopValidation halts the validator chain for the current field. Validators
// wrap it (fmt.Errorf("...: %w", ErrStopValidation)) or return a
// ValidationError that unwraps to it.
var ErrStopValidation = errors.New("stop validation")

// Translator resolves a default message format into the caller's locale and
// applies args the way fmt.Sprintf does.
type Translator interface {
	Translate(format string, args ...any) string
}

// Validator checks a field's current value. A nil return means the value is
// acceptable.
type Validator interface {
	Validate(field Field, t Translator) error
}

// PatternProvider is implemented by validators that mirror their rule into the
// HTML `pattern` attribute.
type PatternProvider interface {
	Pattern() string
}

// LengthConstraint exposes character bounds. Either side may be Unbounded.
type LengthConstraint interface {
	Bounds() (min, max int)
}

// RequiredFlagger is implemented by validators that mark a field as required.
type RequiredFlagger interface {
	SetsRequired() bool
}

// Field models a single input together with the validators attached to it.
type Field struct {
	ID          string      `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string      `json:"name" yaml:"name"`
	Label       string      `json:"label,omitempty" yaml:"label,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Value       string      `json:"value,omitempty" yaml:"value,omitempty"`
	Required    bool        `json:"required,omitempty" yaml:"required,omitempty"`
	InputType   string      `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	Validators  []Validator `json:"-" yaml:"-"`
	Errors      []string    `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// EffectiveID returns the field id, falling back to the submission name.
func (f Field) EffectiveID() string {
	if id := strings.TrimSpace(f.ID); id != "" {
		return id
	}
	return strings.TrimSpace(f.Name)
}

// IsRequired reports whether the field carries the required flag directly or
// through one of its validators.
func (f Field) IsRequired() bool {
	if f.Required {
		return true
	}
	for _, validator := range f.Validators {
		if flagger, ok := validator.(RequiredFlagger); ok && flagger.SetsRequired() {
			return true
		}
	}
	return false
}

// Form groups fields rendered and validated together.
type Form struct {
	ID     string  `json:"id" yaml:"id"`
	Action string  `json:"action,omitempty" yaml:"action,omitempty"`
	Method string  `json:"method,omitempty" yaml:"method,omitempty"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field returns the field with the given effective id.
func (f *Form) Field(id string) (*Field, bool) {
	if f == nil {
		return nil, false
	}
	for idx := range f.Fields {
		if f.Fields[idx].EffectiveID() == id {
			return &f.Fields[idx], true
		}
	}
	return nil, false
}

// DuplicateIDs lists field ids used by more than one field, in first-seen
// order.
func (f Form) DuplicateIDs() []string {
	seen := make(map[string]int, len(f.Fields))
	var dupes []string
	for _, field := range f.Fields {
		id := field.EffectiveID()
		if id == "" {
			continue
		}
		seen[id]++
		if seen[id] == 2 {
			dupes = append(dupes, id)
		}
	}
	return dupes
}
