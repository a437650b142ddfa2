package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/validators"
)

// Matcher decides whether an input type should be used for the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects input types for fields based on an explicit InputType or
// registered matchers. Higher priority wins; ties fall back to registration
// order. Fields nothing matches render as text inputs.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for the input type name with the provided priority.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the input type for a field. An explicit Field.InputType is
// honoured before matcher evaluation.
func (r *Registry) Resolve(field model.Field) InputType {
	if explicit := strings.TrimSpace(field.InputType); explicit != "" {
		return LookupType(explicit)
	}
	if r == nil {
		return Text
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return LookupType(entry.name)
		}
	}
	return Text
}

// Decorate implements model.Decorator, filling in InputType for every field
// that does not declare one.
func (r *Registry) Decorate(form *model.Form) error {
	if r == nil || form == nil {
		return nil
	}
	for idx := range form.Fields {
		field := &form.Fields[idx]
		if strings.TrimSpace(field.InputType) == "" {
			field.InputType = r.Resolve(*field).Name
		}
	}
	return nil
}

func (r *Registry) registerBuiltins() {
	r.Register(Password.Name, 90, func(field model.Field) bool {
		return nameContains(field, "password")
	})

	r.Register(Email.Name, 80, func(field model.Field) bool {
		for _, validator := range field.Validators {
			if provider, ok := validator.(model.PatternProvider); ok && provider.Pattern() == validators.EmailPatternName {
				return true
			}
		}
		return false
	})

	r.Register(Tel.Name, 50, func(field model.Field) bool {
		return nameContains(field, "phone")
	})

	r.Register(URL.Name, 40, func(field model.Field) bool {
		return nameContains(field, "url") || nameContains(field, "website")
	})
}

func nameContains(field model.Field, token string) bool {
	return strings.Contains(strings.ToLower(field.Name), token) ||
		strings.Contains(strings.ToLower(field.ID), token)
}
