package orchestrator_test

import (
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/orchestrator"
	"github.com/goliatone/go-abideform/pkg/render"
	"github.com/goliatone/go-abideform/pkg/testsupport"
)

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"primary-color": "#123456",
		},
		Templates: map[string]string{
			"foundation.page": "templates/page.tpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				render.AssetFoundationStylesheet: "foundation.css",
				render.AssetFoundationScript:     "https://cdn.example.com/foundation.js",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"primary-color": "#654321",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						render.AssetFoundationStylesheet: "foundation.dark.css",
					},
				},
			},
		},
	}
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func previewForm() *model.Form {
	return &model.Form{ID: "nick", Fields: []model.Field{{Name: "nickname", Label: "Nickname"}}}
}

func TestThemeConfigMergesVariant(t *testing.T) {
	cfg := orchestrator.ThemeConfig(&theme.Selection{Theme: "acme", Variant: "dark", Manifest: acmeManifest()})
	if cfg == nil {
		t.Fatalf("expected theme config")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Tokens["primary-color"] != "#654321" || cfg.CSSVars["--primary-color"] != "#654321" {
		t.Fatalf("variant tokens not applied: %+v %+v", cfg.Tokens, cfg.CSSVars)
	}
	if got := cfg.AssetURL(render.AssetFoundationStylesheet); got != "/assets/themes/acme/foundation.dark.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL(render.AssetFoundationScript); got != "https://cdn.example.com/foundation.js" {
		t.Fatalf("absolute urls must not be prefixed, got %q", got)
	}
	if got := cfg.AssetURL(render.AssetJQueryScript); got != "" {
		t.Fatalf("expected unknown asset to resolve empty, got %q", got)
	}
	if orchestrator.ThemeConfig(nil) != nil {
		t.Fatalf("expected nil config for nil selection")
	}
}

func TestGeneratePageUsesThemeSelector(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Manifest: acmeManifest()}}
	gen := orchestrator.New(orchestrator.WithThemeSelector(selector))

	out, err := gen.GeneratePage(testsupport.Context(), orchestrator.Request{
		Form:         previewForm(),
		ThemeName:    "acme",
		ThemeVariant: "light",
	}, render.Page{Title: "Preview"})
	if err != nil {
		t.Fatalf("generate page: %v", err)
	}

	if len(selector.calls) != 1 || selector.calls[0] != (selectorCall{name: "acme", variant: "light"}) {
		t.Fatalf("unexpected selector calls: %+v", selector.calls)
	}
	html := string(out)
	for _, want := range []string{
		`<link rel="stylesheet" href="/assets/themes/acme/foundation.css">`,
		`<script src="` + render.DefaultJQueryScript + `"></script>`,
		`<script src="https://cdn.example.com/foundation.js"></script>`,
		`--primary-color: #123456;`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in page:\n%s", want, html)
		}
	}
}

func TestGeneratePageThemeSelectionError(t *testing.T) {
	boom := errors.New("unknown theme")
	gen := orchestrator.New(orchestrator.WithThemeSelector(&stubThemeSelector{err: boom}))

	_, err := gen.GeneratePage(testsupport.Context(), orchestrator.Request{Form: previewForm()}, render.Page{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected selector error, got %v", err)
	}
}

func TestGeneratePageWithoutThemeUsesDefaults(t *testing.T) {
	out, err := orchestrator.New().GeneratePage(testsupport.Context(), orchestrator.Request{Form: previewForm()}, render.Page{})
	if err != nil {
		t.Fatalf("generate page: %v", err)
	}
	if !strings.Contains(string(out), render.DefaultFoundationStylesheet) || strings.Contains(string(out), "<style>") {
		t.Fatalf("expected CDN defaults without theme variables:\n%s", out)
	}
}

func TestGeneratePageWithThemeProvider(t *testing.T) {
	provider := theme.NewRegistry()
	if err := provider.Register(acmeManifest()); err != nil {
		t.Fatalf("register manifest: %v", err)
	}
	gen := orchestrator.New(orchestrator.WithThemeProvider(provider, "acme", "dark"))

	out, err := gen.GeneratePage(testsupport.Context(), orchestrator.Request{Form: previewForm()}, render.Page{})
	if err != nil {
		t.Fatalf("generate page: %v", err)
	}
	if !strings.Contains(string(out), `href="/assets/themes/acme/foundation.dark.css"`) {
		t.Fatalf("expected default variant stylesheet:\n%s", out)
	}
}
