package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// WithThemeSelector resolves preview page assets through selector.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		if selector != nil {
			o.themes = selector
		}
	}
}

// WithThemeProvider builds a go-theme selector over provider, falling back to
// defaultTheme and defaultVariant when a request names neither.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if provider == nil {
			return
		}
		o.themes = &theme.Selector{
			Registry:       provider,
			DefaultTheme:   defaultTheme,
			DefaultVariant: defaultVariant,
		}
	}
}

func (o *Orchestrator) themeConfig(req Request) (*theme.RendererConfig, error) {
	if o.themes == nil {
		return nil, nil
	}
	selection, err := o.themes.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return ThemeConfig(selection), nil
}

// ThemeConfig flattens a selection into renderer configuration. Variant tokens
// and asset files override the base manifest; every token `name` is also
// exposed as the CSS variable `--name`. A nil selection yields nil.
func ThemeConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	tokens := make(map[string]string)
	files := make(map[string]string)
	var prefix string

	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Tokens {
			tokens[key] = value
		}
		for key, value := range manifest.Assets.Files {
			files[key] = value
		}
		prefix = manifest.Assets.Prefix

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
			for key, value := range variant.Assets.Files {
				files[key] = value
			}
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	return &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok {
				return ""
			}
			return assetURL(prefix, file)
		},
	}
}

func assetURL(prefix, file string) string {
	if file == "" || prefix == "" || strings.HasPrefix(file, "/") || strings.Contains(file, "://") {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}
