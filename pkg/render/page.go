package render

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	rendertemplate "github.com/goliatone/go-abideform/pkg/render/template"
	"github.com/goliatone/go-abideform/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const pageTemplate = "templates/page.tpl"

// Default Foundation 6 CDN assets used by preview pages.
const (
	DefaultFoundationStylesheet = "https://cdn.jsdelivr.net/npm/foundation-sites@6.8.1/dist/css/foundation.min.css"
	DefaultJQueryScript         = "https://cdn.jsdelivr.net/npm/jquery@3.7.1/dist/jquery.min.js"
	DefaultFoundationScript     = "https://cdn.jsdelivr.net/npm/foundation-sites@6.8.1/dist/js/foundation.min.js"
)

// Theme asset keys looked up through Page.Theme. A key the theme does not
// define keeps its CDN default.
const (
	AssetFoundationStylesheet = "foundation.stylesheet"
	AssetJQueryScript         = "foundation.jquery"
	AssetFoundationScript     = "foundation.script"
)

var (
	DefaultStylesheets = []string{DefaultFoundationStylesheet}
	DefaultScripts     = []string{DefaultJQueryScript, DefaultFoundationScript}
)

// TemplatesFS exposes the embedded page templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// Page wraps rendered form markup in a standalone HTML document that loads
// Foundation and registers the custom Abide patterns before initialising it.
type Page struct {
	Title       string
	Lang        string
	Body        string
	Patterns    string
	// Stylesheets and Scripts win over Theme when non-nil; an empty slice
	// emits no tags.
	Stylesheets []string
	Scripts     []string
	// Theme resolves asset URLs and CSS variables from a go-theme selection.
	Theme *theme.RendererConfig
}

// PageRenderer renders Page values through a template engine.
type PageRenderer struct {
	templates rendertemplate.TemplateRenderer
}

// NewPageRenderer uses the embedded template unless a renderer is supplied.
func NewPageRenderer(templates rendertemplate.TemplateRenderer) (*PageRenderer, error) {
	if templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(embeddedTemplates))
		if err != nil {
			return nil, fmt.Errorf("render: configure page templates: %w", err)
		}
		templates = engine
	}
	return &PageRenderer{templates: templates}, nil
}

// Render produces the HTML document.
func (p *PageRenderer) Render(page Page) ([]byte, error) {
	stylesheets := page.Stylesheets
	if stylesheets == nil {
		stylesheets = []string{
			themeAsset(page.Theme, AssetFoundationStylesheet, DefaultFoundationStylesheet),
		}
	}
	scripts := page.Scripts
	if scripts == nil {
		scripts = []string{
			themeAsset(page.Theme, AssetJQueryScript, DefaultJQueryScript),
			themeAsset(page.Theme, AssetFoundationScript, DefaultFoundationScript),
		}
	}
	lang := strings.TrimSpace(page.Lang)
	if lang == "" {
		lang = "en"
	}

	out, err := p.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":       page.Title,
		"lang":        lang,
		"body":        page.Body,
		"patterns":    page.Patterns,
		"stylesheets": stylesheets,
		"scripts":     scripts,
		"theme_vars":  cssVarsRule(page.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("render: page: %w", err)
	}
	return []byte(out), nil
}

func themeAsset(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil || cfg.AssetURL == nil {
		return fallback
	}
	if url := strings.TrimSpace(cfg.AssetURL(key)); url != "" {
		return url
	}
	return fallback
}

// cssVarsRule renders the theme CSS variables as a `:root` rule.
func cssVarsRule(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(cfg.CSSVars))
	for name := range cfg.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {")
	for _, name := range names {
		b.WriteString(" " + name + ": " + cfg.CSSVars[name] + ";")
	}
	b.WriteString(" }")
	return b.String()
}
