package template

import (
	"io"
)

// TemplateRenderer is the seam renderers use to execute named templates or
// inline template strings.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
