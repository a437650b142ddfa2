package foundation

import (
	"github.com/goliatone/go-abideform/pkg/abide"
	"github.com/goliatone/go-abideform/pkg/htmlattr"
	"github.com/goliatone/go-abideform/pkg/model"
)

// AttributeDeriver computes input attributes from a field. Derived attributes
// override caller supplied ones.
type AttributeDeriver interface {
	Derive(field model.Field) (htmlattr.Attrs, error)
}

// DeriverFunc adapts a function into an AttributeDeriver.
type DeriverFunc func(field model.Field) (htmlattr.Attrs, error)

// Derive calls the underlying function.
func (fn DeriverFunc) Derive(field model.Field) (htmlattr.Attrs, error) {
	return fn(field)
}

var _ AttributeDeriver = (*abide.Reconciler)(nil)

// RequiredAttr marks inputs of required fields with the boolean `required`
// attribute.
var RequiredAttr = DeriverFunc(func(field model.Field) (htmlattr.Attrs, error) {
	if !field.IsRequired() {
		return nil, nil
	}
	return htmlattr.Attrs{"required": true}, nil
})

// ErrorStateAttr flags inputs of fields carrying errors so Abide styles them
// as invalid on first paint.
var ErrorStateAttr = DeriverFunc(func(field model.Field) (htmlattr.Attrs, error) {
	if len(field.Errors) == 0 {
		return nil, nil
	}
	return htmlattr.Attrs{"aria_invalid": "true"}, nil
})
