package orchestrator

import (
	"context"
	"fmt"

	"github.com/goliatone/go-abideform/pkg/formdef"
	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/openapi"
)

// FormSource resolves a form by id.
type FormSource interface {
	Form(ctx context.Context, id string) (model.Form, error)
}

// FormSourceFunc adapts a function into a FormSource.
type FormSourceFunc func(ctx context.Context, id string) (model.Form, error)

// Form calls the underlying function.
func (fn FormSourceFunc) Form(ctx context.Context, id string) (model.Form, error) {
	return fn(ctx, id)
}

// DefinitionSource serves forms from a formdef store.
func DefinitionSource(store *formdef.Store) FormSource {
	return FormSourceFunc(func(ctx context.Context, id string) (model.Form, error) {
		if err := ctx.Err(); err != nil {
			return model.Form{}, err
		}
		form, ok := store.Form(id)
		if !ok {
			return model.Form{}, fmt.Errorf("%w: %q", ErrFormNotFound, id)
		}
		return form, nil
	})
}

// OpenAPISource builds forms from operation request bodies; the form id is
// the operation id.
func OpenAPISource(doc *openapi.Document, builder *openapi.Builder) FormSource {
	if builder == nil {
		builder = openapi.NewBuilder()
	}
	return FormSourceFunc(func(ctx context.Context, id string) (model.Form, error) {
		return builder.Form(ctx, doc, id)
	})
}
