package validators

import "github.com/goliatone/go-abideform/pkg/model"

// ValidationError is a recoverable, field-level failure. Its message is meant
// for end users and is already localised.
type ValidationError struct {
	Message string
	// Stop ends the validator chain for the field when set.
	Stop bool
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes model.ErrStopValidation for chain-stopping failures.
func (e *ValidationError) Unwrap() error {
	if e.Stop {
		return model.ErrStopValidation
	}
	return nil
}

func fail(message string) error {
	return &ValidationError{Message: message}
}
