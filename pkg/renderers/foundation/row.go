package foundation

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-abideform/pkg/abide"
	"github.com/goliatone/go-abideform/pkg/htmlattr"
	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/widgets"
)

// RowOption configures a RowInput.
type RowOption func(*RowInput)

// WithReconciler replaces the pattern/length reconciler.
func WithReconciler(reconciler *abide.Reconciler) RowOption {
	return func(w *RowInput) {
		if reconciler != nil {
			w.reconciler = reconciler
		}
	}
}

// WithDerivers appends attribute derivers run after the reconciler.
func WithDerivers(derivers ...AttributeDeriver) RowOption {
	return func(w *RowInput) {
		for _, deriver := range derivers {
			if deriver != nil {
				w.extra = append(w.extra, deriver)
			}
		}
	}
}

// WithTextPolicy overrides the sanitiser applied to labels and descriptions.
func WithTextPolicy(policy *bluemonday.Policy) RowOption {
	return func(w *RowInput) {
		if policy != nil {
			w.policy = policy
		}
	}
}

// WithRowLogger routes reconciler warnings when no reconciler is supplied.
func WithRowLogger(logger *zap.SugaredLogger) RowOption {
	return func(w *RowInput) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// RowInput renders an `<input>` spanning a full Foundation grid row together
// with its label and help text, translating validators into Abide/HTML5
// attributes.
type RowInput struct {
	inputType  widgets.InputType
	reconciler *abide.Reconciler
	extra      []AttributeDeriver
	policy     *bluemonday.Policy
	logger     *zap.SugaredLogger
}

// NewRowInput builds a row widget for the given input type.
func NewRowInput(inputType widgets.InputType, options ...RowOption) *RowInput {
	w := &RowInput{
		inputType: inputType,
		logger:    zap.NewNop().Sugar(),
	}
	if strings.TrimSpace(w.inputType.Name) == "" {
		w.inputType = widgets.Text
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.reconciler == nil {
		w.reconciler = abide.NewReconciler(nil, abide.WithLogger(w.logger))
	}
	if w.policy == nil {
		w.policy = TextPolicy()
	}
	return w
}

// InputType returns the descriptor the widget renders.
func (w *RowInput) InputType() widgets.InputType {
	return w.inputType
}

func (w *RowInput) derivers() []AttributeDeriver {
	out := make([]AttributeDeriver, 0, len(w.extra)+3)
	out = append(out, w.reconciler, RequiredAttr, ErrorStateAttr)
	return append(out, w.extra...)
}

// Render returns the row markup for field. attrs are extra input attributes;
// they may override id, type and value (except for inputs that hide their
// value) while derived validation attributes always win. Checkable inputs
// submit widgets.CheckedValue and start checked when the field value is
// truthy. A field whose
// validators conflict returns an error wrapping abide.ErrMixedPatterns or
// abide.ErrMultipleLength.
func (w *RowInput) Render(field model.Field, attrs htmlattr.Attrs) (string, error) {
	id := field.EffectiveID()
	descID := id + DescriptionSuffix

	kwargs := attrs.Clone()
	kwargs.SetDefault("id", id)
	kwargs.SetDefault("type", w.inputType.Name)
	switch {
	case w.inputType.HideValue:
		kwargs["value"] = ""
	case w.inputType.Checkable:
		kwargs.SetDefault("value", widgets.CheckedValue)
		kwargs.SetDefault("checked", widgets.Checked(field.Value))
	default:
		kwargs.SetDefault("value", field.Value)
	}

	for _, deriver := range w.derivers() {
		derived, err := deriver.Derive(field)
		if err != nil {
			return "", fmt.Errorf("foundation: %w", err)
		}
		kwargs.Merge(derived)
	}

	if !kwargs.Has("name") {
		kwargs["name"] = field.Name
	}
	if !kwargs.Has("aria-describedby") {
		kwargs["aria_describedby"] = descID
	}
	if len(field.Errors) > 0 {
		addClass(kwargs, ClassInvalidInput)
	}

	label := sanitizeText(w.policy, field.Label)
	description := sanitizeText(w.policy, field.Description)
	escapedID := html.EscapeString(id)

	var builder strings.Builder
	builder.Grow(512)

	builder.WriteString(`<div class="` + ClassRow + `">` + "\n")

	builder.WriteString(`<div class="` + ClassLabelColumn + `">` + "\n")
	builder.WriteString(`<label class="` + ClassLabel + `" for="` + escapedID + `">` + label + "</label>\n")
	builder.WriteString("</div>\n")

	builder.WriteString(`<div class="` + ClassInputColumn + `">` + "\n")
	builder.WriteString(`<label class="` + ClassInlineLabel + `" for="` + escapedID + `">` + label + "</label>\n")
	builder.WriteString("<input " + htmlattr.Params(kwargs) + ">\n")
	for _, message := range field.Errors {
		builder.WriteString(`<span class="` + ClassFormError + `">` + html.EscapeString(message) + "</span>\n")
	}
	builder.WriteString(`<p class="` + ClassHelpText + `" id="` + html.EscapeString(descID) + `">` + description + "</p>\n")
	builder.WriteString("</div>\n")

	builder.WriteString("</div>")
	return builder.String(), nil
}

// MustRender panics when Render fails. Conflicting validators are
// configuration mistakes, so templates may prefer failing loudly.
func (w *RowInput) MustRender(field model.Field, attrs htmlattr.Attrs) string {
	out, err := w.Render(field, attrs)
	if err != nil {
		panic(err)
	}
	return out
}

func addClass(attrs htmlattr.Attrs, class string) {
	for _, key := range []string{"class_", "class"} {
		if existing, ok := attrs[key].(string); ok && strings.TrimSpace(existing) != "" {
			attrs[key] = existing + " " + class
			return
		}
	}
	attrs["class_"] = class
}
