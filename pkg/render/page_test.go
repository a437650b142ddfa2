package render_test

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-abideform/pkg/render"
)

func TestPageRendererEmbedsBodyAndPatterns(t *testing.T) {
	pages, err := render.NewPageRenderer(nil)
	if err != nil {
		t.Fatalf("new page renderer: %v", err)
	}

	out, err := pages.Render(render.Page{
		Title:    "Sign <up>",
		Body:     `<div class="row"></div>`,
		Patterns: "Foundation.Abide.defaults.patterns['nick'] = /^(.){2,4}$/;\n",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`<html lang="en">`,
		`<title>Sign &lt;up&gt;</title>`,
		`<div class="row"></div>`,
		`Foundation.Abide.defaults.patterns['nick'] = /^(.){2,4}$/;`,
		`foundation.min.css`,
		`$(document).foundation();`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected page to contain %q, got:\n%s", want, html)
		}
	}

	idxPatterns := strings.Index(html, "Abide.defaults.patterns")
	idxInit := strings.Index(html, "$(document).foundation()")
	if idxPatterns > idxInit {
		t.Fatalf("patterns must be registered before foundation initialises")
	}
}

func TestPageRendererOmitsEmptyPatternScript(t *testing.T) {
	pages, err := render.NewPageRenderer(nil)
	if err != nil {
		t.Fatalf("new page renderer: %v", err)
	}
	out, err := pages.Render(render.Page{Title: "x", Scripts: []string{}, Stylesheets: []string{}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "Abide.defaults") {
		t.Fatalf("unexpected patterns script:\n%s", out)
	}
	if strings.Contains(string(out), "<link") {
		t.Fatalf("expected no stylesheets:\n%s", out)
	}
}

func TestPageRendererResolvesThemeAssets(t *testing.T) {
	pages, err := render.NewPageRenderer(nil)
	if err != nil {
		t.Fatalf("new page renderer: %v", err)
	}
	cfg := &theme.RendererConfig{
		Theme:   "acme",
		CSSVars: map[string]string{"--primary-color": "#123456", "--alert-color": "#cc4b37"},
		AssetURL: func(key string) string {
			if key == render.AssetFoundationStylesheet {
				return "/assets/acme/foundation.css"
			}
			return ""
		},
	}

	out, err := pages.Render(render.Page{Title: "x", Theme: cfg})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`<link rel="stylesheet" href="/assets/acme/foundation.css">`,
		`<script src="` + render.DefaultJQueryScript + `"></script>`,
		`<script src="` + render.DefaultFoundationScript + `"></script>`,
		`<style>:root { --alert-color: #cc4b37; --primary-color: #123456; }</style>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in page:\n%s", want, html)
		}
	}
	if strings.Contains(html, render.DefaultFoundationStylesheet) {
		t.Fatalf("theme stylesheet should replace the default:\n%s", html)
	}

	explicit, err := pages.Render(render.Page{Title: "x", Theme: cfg, Stylesheets: []string{"/site.css"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(explicit), `href="/site.css"`) || strings.Contains(string(explicit), "/assets/acme/foundation.css") {
		t.Fatalf("explicit stylesheets should win over the theme:\n%s", explicit)
	}
}
