package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/render"
	"github.com/goliatone/go-abideform/pkg/renderers/foundation"
)

const defaultRendererName = "foundation"

// ErrFormNotFound is returned when a source has no form with the requested id.
var ErrFormNotFound = errors.New("orchestrator: form not found")

// PatternScripter is implemented by renderers that collect client-side
// patterns which must be registered before the form library initialises.
type PatternScripter interface {
	Patterns() string
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators registers decorators run against every form before
// rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithLogger routes warnings from the default renderer to logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPageRenderer replaces the renderer used by GeneratePage.
func WithPageRenderer(pages *render.PageRenderer) Option {
	return func(o *Orchestrator) {
		o.pages = pages
	}
}

// WithFoundationOptions configures the default foundation renderer. It has no
// effect when WithRegistry is supplied.
func WithFoundationOptions(options ...foundation.Option) Option {
	return func(o *Orchestrator) {
		o.foundationOpts = append(o.foundationOpts, options...)
	}
}

// Orchestrator coordinates source lookup, decoration and rendering.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator
	pages           *render.PageRenderer
	logger          *zap.SugaredLogger
	foundationOpts  []foundation.Option
	themes          theme.ThemeSelector
	initialiseErr   error
}

// New constructs an Orchestrator. Without WithRegistry a registry holding the
// foundation renderer is created.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop().Sugar(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one form to render.
type Request struct {
	// Source resolves FormID.
	Source FormSource
	// Form bypasses Source when set.
	Form *model.Form
	// FormID selects the form from Source.
	FormID string
	// Renderer names the renderer; empty uses the default.
	Renderer string
	// RenderOptions carries values and server-side errors.
	RenderOptions render.RenderOptions
	// Validate runs the validator chain against the form values, including
	// RenderOptions.Values, so messages appear next to the inputs.
	Validate bool
	// Translator localises validation messages when Validate is set.
	Translator model.Translator
	// ThemeName and ThemeVariant pick the theme GeneratePage resolves
	// assets from; empty values use the selector defaults.
	ThemeName    string
	ThemeVariant string
}

// Generate resolves, decorates and renders the requested form.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	output, _, err := o.generate(ctx, req)
	return output, err
}

// GeneratePage renders the form and wraps it in page, filling in the body and,
// when the renderer collects them, the client-side pattern script. With a
// theme selector configured and no page.Theme set, the selected theme
// supplies the page assets.
func (o *Orchestrator) GeneratePage(ctx context.Context, req Request, page render.Page) ([]byte, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	body, renderer, err := o.generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if page.Theme == nil {
		cfg, err := o.themeConfig(req)
		if err != nil {
			return nil, err
		}
		page.Theme = cfg
	}

	page.Body = string(body)
	if scripter, ok := renderer.(PatternScripter); ok {
		page.Patterns = scripter.Patterns()
	}
	out, err := o.pages.Render(page)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render page: %w", err)
	}
	return out, nil
}

// Renderer returns the renderer a request would use.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if name == "" {
		name = o.defaultRenderer
		if _, err := o.registry.Get(name); err != nil {
			name = ""
		}
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
	}
	return renderer, nil
}

func (o *Orchestrator) generate(ctx context.Context, req Request) ([]byte, render.Renderer, error) {
	if ctx == nil {
		return nil, nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	form, err := o.resolveForm(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if err := model.Decorate(&form, o.decorators...); err != nil {
		return nil, nil, fmt.Errorf("orchestrator: decorate form: %w", err)
	}
	if req.Validate {
		for idx := range form.Fields {
			if value, ok := req.RenderOptions.Values[form.Fields[idx].EffectiveID()]; ok {
				form.Fields[idx].Value = value
			}
		}
		form.Validate(req.Translator)
	}

	renderer, err := o.Renderer(req.Renderer)
	if err != nil {
		return nil, nil, err
	}
	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, renderer, nil
}

func (o *Orchestrator) resolveForm(ctx context.Context, req Request) (model.Form, error) {
	if req.Form != nil {
		form := *req.Form
		form.Fields = append([]model.Field(nil), req.Form.Fields...)
		return form, nil
	}
	if req.Source == nil {
		return model.Form{}, errors.New("orchestrator: source or form is required")
	}
	if req.FormID == "" {
		return model.Form{}, errors.New("orchestrator: form id is required")
	}
	form, err := req.Source.Form(ctx, req.FormID)
	if err != nil {
		return model.Form{}, fmt.Errorf("orchestrator: load form: %w", err)
	}
	return form, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.pages == nil {
		pages, err := render.NewPageRenderer(nil)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: page renderer: %w", err)
			return
		}
		o.pages = pages
	}
	if o.registry != nil {
		return
	}
	options := append([]foundation.Option{foundation.WithLogger(o.logger)}, o.foundationOpts...)
	registry, err := render.NewRegistry(foundation.New(options...))
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		return
	}
	o.registry = registry
}
