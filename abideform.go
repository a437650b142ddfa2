package abideform

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-abideform/pkg/formdef"
	"github.com/goliatone/go-abideform/pkg/orchestrator"
	"github.com/goliatone/go-abideform/pkg/render"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// FormSource aliases orchestrator.FormSource for callers that only import the
// root package.
type FormSource = orchestrator.FormSource

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML resolves formID from source and renders it with the named
// renderer. An empty renderer name uses the Foundation renderer.
func GenerateHTML(ctx context.Context, source FormSource, formID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		FormID:   formID,
		Renderer: rendererName,
	})
}

// LoadDefinitions reads every form definition under fsys and returns a source
// serving them.
func LoadDefinitions(fsys fs.FS) (FormSource, error) {
	store, err := formdef.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return orchestrator.DefinitionSource(store), nil
}

// PageTemplates exposes the embedded preview page templates so callers can
// reuse or extend them.
func PageTemplates() fs.FS {
	return render.TemplatesFS()
}

// WithThemeSelector passes a go-theme selector to the orchestrator so preview
// pages resolve their Foundation assets from the selected theme.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider builds a go-theme selector from provider with the given
// default theme and variant.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}
