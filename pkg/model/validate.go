package model

import "errors"

// Validate runs each field's validators in order. Failures are collected per
// field id and also stored on the field's Errors slice so renderers can show
// them next to the input. A validator failing with ErrStopValidation ends the
// chain for that field.
func (f *Form) Validate(t Translator) map[string][]string {
	if f == nil {
		return nil
	}

	out := make(map[string][]string)
	for idx := range f.Fields {
		field := &f.Fields[idx]
		field.Errors = ValidateField(*field, t)
		if len(field.Errors) > 0 {
			out[field.EffectiveID()] = append([]string(nil), field.Errors...)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ValidateField runs the validators attached to field and returns their
// messages.
func ValidateField(field Field, t Translator) []string {
	var messages []string
	for _, validator := range field.Validators {
		if validator == nil {
			continue
		}
		err := validator.Validate(field, t)
		if err == nil {
			continue
		}
		messages = append(messages, err.Error())
		if errors.Is(err, ErrStopValidation) {
			break
		}
	}
	return messages
}
