package validators

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/goliatone/go-abideform/pkg/model"
)

// Length bounds the number of characters in a value. Min or Max may be
// model.Unbounded.
type Length struct {
	Min     int
	Max     int
	Message string
}

var (
	_ model.Validator        = Length{}
	_ model.LengthConstraint = Length{}
)

// NewLength validates the bounds before returning the validator.
func NewLength(min, max int, message string) (Length, error) {
	if min == model.Unbounded && max == model.Unbounded {
		return Length{}, errors.New("validators: length requires at least one bound")
	}
	if min < model.Unbounded || max < model.Unbounded {
		return Length{}, fmt.Errorf("validators: invalid length bounds %d..%d", min, max)
	}
	if max != model.Unbounded && min > max {
		return Length{}, fmt.Errorf("validators: length min %d exceeds max %d", min, max)
	}
	return Length{Min: min, Max: max, Message: message}, nil
}

// MustLength is NewLength for static declarations.
func MustLength(min, max int) Length {
	v, err := NewLength(min, max, "")
	if err != nil {
		panic(err)
	}
	return v
}

// Bounds implements model.LengthConstraint.
func (v Length) Bounds() (int, int) {
	return v.Min, v.Max
}

// Validate implements model.Validator.
func (v Length) Validate(field model.Field, t model.Translator) error {
	length := utf8.RuneCountInString(field.Value)
	if length >= v.Min && (v.Max == model.Unbounded || length <= v.Max) {
		return nil
	}
	if v.Message != "" {
		return fail(v.Message)
	}
	switch {
	case v.Max == model.Unbounded:
		return fail(translate(t, MsgLengthMin, v.Min))
	case v.Min == model.Unbounded:
		return fail(translate(t, MsgLengthMax, v.Max))
	default:
		return fail(translate(t, MsgLengthBetween, v.Min, v.Max))
	}
}
