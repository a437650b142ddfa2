package render

import (
	"context"

	"github.com/goliatone/go-abideform/pkg/model"
)

// Renderer converts a Form into a byte representation (an HTML fragment for
// the Foundation renderer).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.Form, options RenderOptions) ([]byte, error)
}
