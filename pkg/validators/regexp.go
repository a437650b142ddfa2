package validators

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/goliatone/go-abideform/pkg/model"
)

// ErrUncompiled is returned when a Regexp or Pattern zero value is used to
// validate.
var ErrUncompiled = errors.New("validators: regexp was not compiled; use NewRegexp or NewPattern")

// Regexp validates values against an expression anchored at the start of the
// value. It is a server-side rule only; use Pattern to mirror it client-side.
type Regexp struct {
	expr    string
	re      *regexp.Regexp
	Message string
}

var _ model.Validator = (*Regexp)(nil)

// NewRegexp compiles expr. The match is anchored at the start of the value but
// not at the end, so add `$` for a full match.
func NewRegexp(expr string, ignoreCase bool, message string) (*Regexp, error) {
	source := "^(?:" + expr + ")"
	if ignoreCase {
		source = "(?i)" + source
	}
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("validators: compile %q: %w", expr, err)
	}
	return &Regexp{expr: expr, re: re, Message: message}, nil
}

// Expr returns the expression as supplied.
func (v *Regexp) Expr() string {
	if v == nil {
		return ""
	}
	return v.expr
}

// Validate implements model.Validator. A Regexp that was not built by
// NewRegexp reports ErrUncompiled.
func (v *Regexp) Validate(field model.Field, t model.Translator) error {
	if v == nil || v.re == nil {
		return ErrUncompiled
	}
	if v.re.MatchString(field.Value) {
		return nil
	}
	if v.Message != "" {
		return fail(v.Message)
	}
	return fail(translate(t, MsgInvalidInput))
}

// Pattern is a Regexp whose expression is also emitted as the HTML `pattern`
// attribute. The expression should therefore be valid in both Go and
// JavaScript.
type Pattern struct {
	*Regexp
}

var _ model.PatternProvider = Pattern{}

// NewPattern compiles expr like NewRegexp.
func NewPattern(expr string, message string) (Pattern, error) {
	re, err := NewRegexp(expr, false, message)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{Regexp: re}, nil
}

// Pattern implements model.PatternProvider.
func (v Pattern) Pattern() string {
	return v.Regexp.Expr()
}

// Validate implements model.Validator.
func (v Pattern) Validate(field model.Field, t model.Translator) error {
	return v.Regexp.Validate(field, t)
}
