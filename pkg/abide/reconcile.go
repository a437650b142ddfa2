package abide

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/goliatone/go-abideform/pkg/htmlattr"
	"github.com/goliatone/go-abideform/pkg/model"
)

var (
	// ErrMixedPatterns is returned when more than one validator on a field
	// defines a pattern.
	ErrMixedPatterns = errors.New("abide: do not mix validators that define a pattern")
	// ErrMultipleLength is returned when a field carries more than one length
	// constraint.
	ErrMultipleLength = errors.New("abide: do not use multiple length validators")
)

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger routes warnings to logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithNamedPatterns emits the field id as the `pattern` attribute for
// synthesised length patterns, relying on the client to resolve it through
// Foundation.Abide.defaults.patterns (see Registry.Script). By default the
// expression itself is emitted.
func WithNamedPatterns() Option {
	return func(r *Reconciler) {
		r.namedPatterns = true
	}
}

// Reconciler turns a field's validators into the client-side attributes
// `pattern`, `minlength` and `maxlength`.
type Reconciler struct {
	registry      *Registry
	logger        *zap.SugaredLogger
	namedPatterns bool
}

// NewReconciler builds a reconciler that records synthesised patterns in
// registry. A nil registry gets a private one.
func NewReconciler(registry *Registry, options ...Option) *Reconciler {
	r := &Reconciler{
		registry: registry,
		logger:   zap.NewNop().Sugar(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.registry == nil {
		r.registry = NewRegistry(r.logger)
	}
	return r
}

// Registry exposes the registry the reconciler writes to.
func (r *Reconciler) Registry() *Registry {
	return r.registry
}

// Derive inspects field.Validators and returns the attributes to merge into
// the rendered input. Conflicting validator setups are programmer errors and
// are reported as ErrMixedPatterns or ErrMultipleLength.
func (r *Reconciler) Derive(field model.Field) (htmlattr.Attrs, error) {
	id := field.EffectiveID()
	attrs := htmlattr.Attrs{}

	var (
		pattern   string
		hasLength bool
		minLen    int
		maxLen    int
	)

	for _, validator := range field.Validators {
		if provider, ok := validator.(model.PatternProvider); ok {
			if pattern != "" {
				return nil, fmt.Errorf("field %q: %w", id, ErrMixedPatterns)
			}
			pattern = provider.Pattern()
		}

		if constraint, ok := validator.(model.LengthConstraint); ok {
			if hasLength {
				return nil, fmt.Errorf("field %q: %w", id, ErrMultipleLength)
			}
			hasLength = true
			minLen, maxLen = constraint.Bounds()
			if minLen != model.Unbounded {
				attrs["minlength"] = minLen
			}
			if maxLen != model.Unbounded {
				attrs["maxlength"] = maxLen
			}
		}
	}

	if hasLength && minLen != model.Unbounded && pattern != "" {
		r.logger.Warnw("minimum length requirement will not be enforced client side by contemporary browsers",
			"field", id,
			"minlength", minLen,
			"pattern", pattern,
		)
	}

	if hasLength && pattern == "" {
		synthesised := LengthPattern(minLen, maxLen)
		r.registry.Register(id, synthesised)
		pattern = synthesised
		if r.namedPatterns {
			pattern = id
		}
	}

	if pattern != "" {
		attrs["pattern"] = pattern
	}
	return attrs, nil
}

// LengthPattern builds the "any character repeated min to max times"
// expression used when a field has length bounds but no explicit pattern. An
// unbounded min counts as zero and an unbounded max is left open.
func LengthPattern(minLen, maxLen int) string {
	if minLen == model.Unbounded {
		minLen = 0
	}
	upper := ""
	if maxLen != model.Unbounded {
		upper = strconv.Itoa(maxLen)
	}
	return "^(.){" + strconv.Itoa(minLen) + "," + upper + "}$"
}
