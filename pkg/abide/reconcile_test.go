package abide_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-abideform/pkg/abide"
	"github.com/goliatone/go-abideform/pkg/htmlattr"
	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/validators"
)

func newObservedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return zap.New(core).Sugar(), logs
}

func mustPattern(t *testing.T, expr string) validators.Pattern {
	t.Helper()
	p, err := validators.NewPattern(expr, "")
	if err != nil {
		t.Fatalf("compile pattern: %v", err)
	}
	return p
}

func TestDeriveSynthesisesPatternFromLength(t *testing.T) {
	registry := abide.NewRegistry(nil)
	reconciler := abide.NewReconciler(registry)

	field := model.Field{ID: "username", Validators: []model.Validator{validators.MustLength(3, 10)}}
	attrs, err := reconciler.Derive(field)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	want := htmlattr.Attrs{"minlength": 3, "maxlength": 10, "pattern": "^(.){3,10}$"}
	if diff := cmp.Diff(want, attrs); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
	if got := htmlattr.Params(attrs); got != `maxlength="10" minlength="3" pattern="^(.){3,10}$"` {
		t.Fatalf("unexpected serialised attrs %q", got)
	}
	if pattern, ok := registry.Lookup("username"); !ok || pattern != "^(.){3,10}$" {
		t.Fatalf("expected registered pattern, got %q (ok=%v)", pattern, ok)
	}
}

func TestDeriveOpenBounds(t *testing.T) {
	tests := []struct {
		name   string
		length validators.Length
		want   htmlattr.Attrs
	}{
		{
			name:   "min only",
			length: validators.MustLength(2, model.Unbounded),
			want:   htmlattr.Attrs{"minlength": 2, "pattern": "^(.){2,}$"},
		},
		{
			name:   "max only",
			length: validators.MustLength(model.Unbounded, 8),
			want:   htmlattr.Attrs{"maxlength": 8, "pattern": "^(.){0,8}$"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reconciler := abide.NewReconciler(nil)
			attrs, err := reconciler.Derive(model.Field{Name: "code", Validators: []model.Validator{tt.length}})
			if err != nil {
				t.Fatalf("derive: %v", err)
			}
			if diff := cmp.Diff(tt.want, attrs); diff != "" {
				t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeriveWarnsWhenMinLengthMeetsExplicitPattern(t *testing.T) {
	logger, logs := newObservedLogger()
	registry := abide.NewRegistry(logger)
	reconciler := abide.NewReconciler(registry, abide.WithLogger(logger))

	field := model.Field{
		ID:         "contact",
		Validators: []model.Validator{validators.MustLength(3, model.Unbounded), validators.Email{}},
	}
	attrs, err := reconciler.Derive(field)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if attrs["pattern"] != "email" {
		t.Fatalf("expected explicit pattern to win, got %v", attrs["pattern"])
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["field"] != "contact" {
		t.Fatalf("expected field in warning context, got %v", entry.ContextMap())
	}
	if registry.Len() != 0 {
		t.Fatalf("explicit pattern must not register a synthesised one")
	}
}

func TestDeriveRejectsMixedPatterns(t *testing.T) {
	reconciler := abide.NewReconciler(nil)
	field := model.Field{
		Name:       "zip",
		Validators: []model.Validator{validators.Email{}, mustPattern(t, `[0-9]{5}`)},
	}
	_, err := reconciler.Derive(field)
	if !errors.Is(err, abide.ErrMixedPatterns) {
		t.Fatalf("expected ErrMixedPatterns, got %v", err)
	}
}

func TestDeriveRejectsMultipleLengths(t *testing.T) {
	reconciler := abide.NewReconciler(nil)
	field := model.Field{
		Name:       "title",
		Validators: []model.Validator{validators.MustLength(1, 5), validators.MustLength(2, 6)},
	}
	_, err := reconciler.Derive(field)
	if !errors.Is(err, abide.ErrMultipleLength) {
		t.Fatalf("expected ErrMultipleLength, got %v", err)
	}
}

func TestDeriveWithoutConstraints(t *testing.T) {
	reconciler := abide.NewReconciler(nil)
	attrs, err := reconciler.Derive(model.Field{Name: "notes", Validators: []model.Validator{validators.Required{}}})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if len(attrs) != 0 {
		t.Fatalf("expected no attrs, got %v", attrs)
	}
}

func TestDeriveNamedPatterns(t *testing.T) {
	registry := abide.NewRegistry(nil)
	reconciler := abide.NewReconciler(registry, abide.WithNamedPatterns())

	attrs, err := reconciler.Derive(model.Field{ID: "nick", Validators: []model.Validator{validators.MustLength(2, 4)}})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if attrs["pattern"] != "nick" {
		t.Fatalf("expected field id as pattern name, got %v", attrs["pattern"])
	}
	if got := registry.Script(); got != "Foundation.Abide.defaults.patterns['nick'] = /^(.){2,4}$/;\n" {
		t.Fatalf("unexpected script %q", got)
	}
}

func TestRepeatedRenderWithDivergentLengthWarns(t *testing.T) {
	logger, logs := newObservedLogger()
	registry := abide.NewRegistry(logger)
	reconciler := abide.NewReconciler(registry, abide.WithLogger(logger))

	first := model.Field{ID: "code", Validators: []model.Validator{validators.MustLength(3, 10)}}
	if _, err := reconciler.Derive(first); err != nil {
		t.Fatalf("derive: %v", err)
	}
	if _, err := reconciler.Derive(first); err != nil {
		t.Fatalf("derive: %v", err)
	}
	if logs.Len() != 0 {
		t.Fatalf("identical re-registration must not warn, got %d", logs.Len())
	}

	second := model.Field{ID: "code", Validators: []model.Validator{validators.MustLength(3, 12)}}
	if _, err := reconciler.Derive(second); err != nil {
		t.Fatalf("derive: %v", err)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected registry conflict warning, got %d", logs.Len())
	}
	if pattern, _ := registry.Lookup("code"); pattern != "^(.){3,12}$" {
		t.Fatalf("expected latest pattern to win, got %q", pattern)
	}
}
