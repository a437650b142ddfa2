package foundation

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-abideform/pkg/abide"
	"github.com/goliatone/go-abideform/pkg/htmlattr"
	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/render"
	"github.com/goliatone/go-abideform/pkg/widgets"
)

const (
	rendererName        = "foundation"
	rendererContentType = "text/html; charset=utf-8"
	methodOverrideField = "_method"
)

// Option configures the form renderer.
type Option func(*Renderer)

// WithRegistry shares a pattern registry across renderers so a page can emit
// a single Abide patterns script.
func WithRegistry(registry *abide.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// WithLogger routes duplicate id and pattern warnings to logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithNamedPatterns makes synthesised length patterns reference the field id.
func WithNamedPatterns() Option {
	return func(r *Renderer) {
		r.namedPatterns = true
	}
}

// WithSanitizer overrides the label/description policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithFieldDerivers appends attribute derivers to every row.
func WithFieldDerivers(derivers ...AttributeDeriver) Option {
	return func(r *Renderer) {
		r.derivers = append(r.derivers, derivers...)
	}
}

// WithWidgets replaces the input type registry.
func WithWidgets(registry *widgets.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.widgets = registry
		}
	}
}

// Renderer renders a whole form as Foundation grid rows wrapped in an
// Abide-enabled `<form>` element.
type Renderer struct {
	registry      *abide.Registry
	reconciler    *abide.Reconciler
	widgets       *widgets.Registry
	policy        *bluemonday.Policy
	derivers      []AttributeDeriver
	logger        *zap.SugaredLogger
	namedPatterns bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.registry == nil {
		r.registry = abide.NewRegistry(r.logger)
	}
	if r.widgets == nil {
		r.widgets = widgets.NewRegistry()
	}
	if r.policy == nil {
		r.policy = TextPolicy()
	}

	reconcilerOpts := []abide.Option{abide.WithLogger(r.logger)}
	if r.namedPatterns {
		reconcilerOpts = append(reconcilerOpts, abide.WithNamedPatterns())
	}
	r.reconciler = abide.NewReconciler(r.registry, reconcilerOpts...)
	return r
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return rendererName
}

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string {
	return rendererContentType
}

// Registry returns the registry synthesised patterns are recorded in.
func (r *Renderer) Registry() *abide.Registry {
	return r.registry
}

// Patterns returns the Abide patterns script for everything rendered so far.
func (r *Renderer) Patterns() string {
	return r.registry.Script()
}

// Row returns a row widget for field wired to the renderer's shared state.
func (r *Renderer) Row(field model.Field) *RowInput {
	return NewRowInput(
		r.widgets.Resolve(field),
		WithReconciler(r.reconciler),
		WithTextPolicy(r.policy),
		WithRowLogger(r.logger),
		WithDerivers(r.derivers...),
	)
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, form model.Form, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if dups := form.DuplicateIDs(); len(dups) > 0 {
		r.logger.Warnw("duplicate field ids; synthesised patterns will collide",
			"form", form.ID,
			"ids", dups,
		)
	}

	action := firstNonEmpty(options.Action, form.Action)
	method := strings.ToUpper(firstNonEmpty(options.Method, form.Method, "POST"))
	formMethod, override := method, ""
	if method != "GET" && method != "POST" {
		formMethod, override = "POST", method
	}

	formAttrs := htmlattr.Attrs{
		"data_abide": true,
		"novalidate": true,
		"method":     strings.ToLower(formMethod),
	}
	if form.ID != "" {
		formAttrs["id"] = form.ID
	}
	if action != "" {
		formAttrs["action"] = action
	}

	var builder strings.Builder
	builder.WriteString("<form " + htmlattr.Params(formAttrs) + ">\n")
	if override != "" {
		builder.WriteString("<input " + htmlattr.Params(htmlattr.Attrs{
			"type":  "hidden",
			"name":  methodOverrideField,
			"value": override,
		}) + ">\n")
	}

	for _, field := range form.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		field = applyOptions(field, options)

		row, err := r.Row(field).Render(field, nil)
		if err != nil {
			return nil, fmt.Errorf("foundation: form %q: %w", form.ID, err)
		}
		builder.WriteString(row)
		builder.WriteString("\n")
	}
	builder.WriteString("</form>")

	return []byte(builder.String()), nil
}

func applyOptions(field model.Field, options render.RenderOptions) model.Field {
	id := field.EffectiveID()
	if value, ok := options.Values[id]; ok {
		field.Value = value
	}
	if messages := options.Errors[id]; len(messages) > 0 {
		merged := make([]string, 0, len(field.Errors)+len(messages))
		merged = append(merged, field.Errors...)
		merged = append(merged, messages...)
		field.Errors = render.MergeFormErrors(nil, merged...)
	}
	return field
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
