package formdef

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/validators"
)

// Validator kinds understood in definition files.
const (
	KindEmail    = "email"
	KindLength   = "length"
	KindPattern  = "pattern"
	KindRegexp   = "regexp"
	KindRequired = "required"
)

// Kinds lists the supported validator kinds.
func Kinds() []string {
	return []string{KindEmail, KindLength, KindPattern, KindRegexp, KindRequired}
}

func buildValidator(raw validatorFile) (model.Validator, error) {
	switch kind := strings.ToLower(strings.TrimSpace(raw.Kind)); kind {
	case KindEmail:
		return validators.Email{Message: raw.Message}, nil
	case KindLength:
		return validators.NewLength(bound(raw.Min), bound(raw.Max), raw.Message)
	case KindPattern:
		if raw.Pattern == "" {
			return nil, fmt.Errorf("%s validator requires a pattern", kind)
		}
		if raw.IgnoreCase {
			return nil, fmt.Errorf("%s validator cannot ignore case; use %s", kind, KindRegexp)
		}
		return validators.NewPattern(raw.Pattern, raw.Message)
	case KindRegexp:
		if raw.Pattern == "" {
			return nil, fmt.Errorf("%s validator requires a pattern", kind)
		}
		return validators.NewRegexp(raw.Pattern, raw.IgnoreCase, raw.Message)
	case KindRequired:
		return validators.Required{Message: raw.Message}, nil
	case "":
		return nil, fmt.Errorf("validator kind is required")
	default:
		return nil, fmt.Errorf("unknown validator kind %q (supported: %s)", raw.Kind, strings.Join(Kinds(), ", "))
	}
}

func bound(value *int) int {
	if value == nil {
		return model.Unbounded
	}
	return *value
}
