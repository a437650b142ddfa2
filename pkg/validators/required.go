package validators

import (
	"strings"

	"github.com/goliatone/go-abideform/pkg/model"
)

// Required rejects blank values and stops further validation of the field.
type Required struct {
	Message string
}

var (
	_ model.Validator       = Required{}
	_ model.RequiredFlagger = Required{}
)

// Validate implements model.Validator.
func (v Required) Validate(field model.Field, t model.Translator) error {
	if strings.TrimSpace(field.Value) != "" {
		return nil
	}
	message := v.Message
	if message == "" {
		message = translate(t, MsgRequired)
	}
	return &ValidationError{Message: message, Stop: true}
}

// SetsRequired implements model.RequiredFlagger.
func (Required) SetsRequired() bool {
	return true
}
