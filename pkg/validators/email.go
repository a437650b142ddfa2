package validators

import (
	"regexp"

	"github.com/goliatone/go-abideform/pkg/model"
)

// EmailPatternName is the Abide named pattern matching WHATWG addresses.
const EmailPatternName = "email"

// whatwgEmail is the "valid e-mail address" expression from
// https://html.spec.whatwg.org/multipage/input.html#valid-e-mail-address
var whatwgEmail = regexp.MustCompile("(?i)^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+" +
	"@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
	"(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// Email validates addresses syntactically. No DNS lookups are made.
type Email struct {
	// Message overrides the default "Invalid email address." text.
	Message string
}

var (
	_ model.Validator       = Email{}
	_ model.PatternProvider = Email{}
)

// IsEmail reports whether value is a valid WHATWG e-mail address.
func IsEmail(value string) bool {
	return whatwgEmail.MatchString(value)
}

// Validate implements model.Validator.
func (v Email) Validate(field model.Field, t model.Translator) error {
	if IsEmail(field.Value) {
		return nil
	}
	if v.Message != "" {
		return fail(v.Message)
	}
	return fail(translate(t, MsgInvalidEmail))
}

// Pattern returns the Abide named pattern so the browser applies the same
// rule.
func (Email) Pattern() string {
	return EmailPatternName
}
