// Package prompt collects form values interactively, validating each answer
// with the field's own validator chain before accepting it.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/widgets"
)

// Option configures a Collector.
type Option func(*Collector)

// WithDriver swaps the terminal driver.
func WithDriver(driver Driver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithTranslator localises validator messages.
func WithTranslator(t model.Translator) Option {
	return func(c *Collector) {
		c.translator = t
	}
}

// WithWidgets replaces the registry deciding which fields are masked.
func WithWidgets(registry *widgets.Registry) Option {
	return func(c *Collector) {
		if registry != nil {
			c.widgets = registry
		}
	}
}

// Collector walks a form prompting for every field.
type Collector struct {
	driver     Driver
	translator model.Translator
	widgets    *widgets.Registry
	strip      *bluemonday.Policy
}

// New builds a Collector using survey prompts unless a driver is supplied.
func New(options ...Option) *Collector {
	c := &Collector{
		widgets: widgets.NewRegistry(),
		strip:   bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.driver == nil {
		c.driver = NewSurveyDriver()
	}
	return c
}

// Collect prompts for each field of form in order and stores the answers as
// field values. Answers failing a validator are rejected by the prompt and
// asked again. The final per-field errors of the whole form are returned; they
// are empty unless the driver accepts answers without validating them.
func (c *Collector) Collect(ctx context.Context, form *model.Form) (map[string][]string, error) {
	if form == nil {
		return nil, errors.New("prompt: form is required")
	}
	if form.ID != "" {
		if err := c.driver.Info(ctx, form.ID); err != nil {
			return nil, err
		}
	}

	for idx := range form.Fields {
		field := &form.Fields[idx]
		inputType := c.widgets.Resolve(*field)

		cfg := InputConfig{
			Message:   c.message(*field),
			Help:      c.plain(field.Description),
			Validator: c.validator(*field),
		}

		var (
			answer string
			err    error
		)
		switch {
		case inputType.HideValue:
			answer, err = c.driver.Password(ctx, cfg)
		case inputType.Checkable:
			cfg.Default = field.Value
			answer, err = c.confirm(ctx, cfg)
		default:
			cfg.Default = field.Value
			answer, err = c.driver.Input(ctx, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", field.EffectiveID(), err)
		}
		field.Value = answer
	}

	return form.Validate(c.translator), nil
}

// confirm stores a declined checkbox as an empty value, matching a browser
// that omits unchecked boxes from the submission.
func (c *Collector) confirm(ctx context.Context, cfg InputConfig) (string, error) {
	checked, err := c.driver.Confirm(ctx, cfg)
	if err != nil || !checked {
		return "", err
	}
	return widgets.CheckedValue, nil
}

func (c *Collector) message(field model.Field) string {
	text := c.plain(field.Label)
	if text == "" {
		text = field.EffectiveID()
	}
	if field.IsRequired() {
		text += " *"
	}
	return text
}

func (c *Collector) validator(field model.Field) func(string) error {
	if len(field.Validators) == 0 {
		return nil
	}
	return func(answer string) error {
		candidate := field
		candidate.Value = answer
		messages := model.ValidateField(candidate, c.translator)
		if len(messages) == 0 {
			return nil
		}
		return errors.New(strings.Join(messages, " "))
	}
}

// plain strips markup from labels and descriptions for terminal display.
func (c *Collector) plain(raw string) string {
	return strings.TrimSpace(html.UnescapeString(c.strip.Sanitize(raw)))
}
