package foundation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-abideform/pkg/abide"
	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/render"
	"github.com/goliatone/go-abideform/pkg/renderers/foundation"
	"github.com/goliatone/go-abideform/pkg/validators"
)

func signupForm() model.Form {
	return model.Form{
		ID:     "signup",
		Action: "/signup",
		Fields: []model.Field{
			usernameField(),
			{Name: "email", Label: "Email", Validators: []model.Validator{validators.Required{}, validators.Email{}}},
			{Name: "password", Label: "Password", Value: "secret"},
		},
	}
}

func TestRendererImplementsContract(t *testing.T) {
	renderer := foundation.New()
	if renderer.Name() != "foundation" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}

	registry, err := render.NewRegistry(renderer)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	got, err := registry.Get("")
	if err != nil || got.Name() != "foundation" {
		t.Fatalf("expected foundation as default renderer, got %v (%v)", got, err)
	}
}

func TestRendererRendersForm(t *testing.T) {
	renderer := foundation.New()
	out, err := renderer.Render(context.Background(), signupForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if !strings.HasPrefix(html, `<form action="/signup" data-abide id="signup" method="post" novalidate>`+"\n") {
		t.Fatalf("unexpected form opening:\n%s", html)
	}
	if !strings.HasSuffix(html, "</div>\n</form>") {
		t.Fatalf("unexpected form closing:\n%s", html)
	}
	if strings.Count(html, `<div class="row">`) != 3 {
		t.Fatalf("expected three rows:\n%s", html)
	}
	for _, fragment := range []string{
		`pattern="^(.){3,10}$"`,
		`required type="email"`,
		`type="password" value=""`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, html)
		}
	}

	want := "Foundation.Abide.defaults.patterns['username'] = /^(.){3,10}$/;\n"
	if got := renderer.Patterns(); got != want {
		t.Fatalf("patterns mismatch\nwant %q\n got %q", want, got)
	}
}

func TestRendererAppliesOptions(t *testing.T) {
	renderer := foundation.New()
	out, err := renderer.Render(context.Background(), signupForm(), render.RenderOptions{
		Action: "/accounts/1",
		Method: "patch",
		Values: map[string]string{"username": "alice", "password": "nope"},
		Errors: map[string][]string{"email": {"Already taken", " Already taken "}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, fragment := range []string{
		`action="/accounts/1"`,
		`method="post"`,
		`<input name="_method" type="hidden" value="PATCH">`,
		`value="alice"`,
		`aria-invalid="true"`,
		`class="is-invalid-input"`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, html)
		}
	}
	if strings.Count(html, "Already taken") != 1 {
		t.Fatalf("expected deduplicated error message:\n%s", html)
	}
	if strings.Contains(html, `value="nope"`) {
		t.Fatalf("password value leaked:\n%s", html)
	}
}

func TestRendererSharedRegistry(t *testing.T) {
	registry := abide.NewRegistry(nil)
	first := foundation.New(foundation.WithRegistry(registry))
	second := foundation.New(foundation.WithRegistry(registry), foundation.WithNamedPatterns())

	form := model.Form{Fields: []model.Field{{Name: "nick", Validators: []model.Validator{validators.MustLength(model.Unbounded, 8)}}}}
	if _, err := first.Render(context.Background(), form, render.RenderOptions{}); err != nil {
		t.Fatalf("first render: %v", err)
	}

	form.Fields[0].Name = "code"
	out, err := second.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !strings.Contains(string(out), `pattern="code"`) {
		t.Fatalf("expected named pattern reference:\n%s", out)
	}

	want := map[string]string{"nick": "^(.){0,8}$", "code": "^(.){0,8}$"}
	if diff := cmp.Diff(want, registry.Patterns()); diff != "" {
		t.Fatalf("patterns mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererWarnsOnDuplicateIDs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	renderer := foundation.New(foundation.WithLogger(zap.New(core).Sugar()))

	form := model.Form{ID: "dupes", Fields: []model.Field{
		{Name: "code", Validators: []model.Validator{validators.MustLength(1, 2)}},
		{Name: "code", Validators: []model.Validator{validators.MustLength(1, 3)}},
	}}
	if _, err := renderer.Render(context.Background(), form, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if logs.FilterMessageSnippet("duplicate field ids").Len() != 1 {
		t.Fatalf("expected duplicate id warning, got %v", logs.All())
	}
	if logs.FilterMessageSnippet("overridden").Len() != 1 {
		t.Fatalf("expected pattern override warning, got %v", logs.All())
	}
	if got, _ := renderer.Registry().Lookup("code"); got != "^(.){1,3}$" {
		t.Fatalf("expected last registration to win, got %q", got)
	}
}

func TestRendererPropagatesErrors(t *testing.T) {
	renderer := foundation.New()
	form := model.Form{ID: "bad", Fields: []model.Field{
		{Name: "x", Validators: []model.Validator{validators.MustLength(1, 2), validators.MustLength(1, 3)}},
	}}
	if _, err := renderer.Render(context.Background(), form, render.RenderOptions{}); !errors.Is(err, abide.ErrMultipleLength) {
		t.Fatalf("expected ErrMultipleLength, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderer.Render(ctx, signupForm(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
