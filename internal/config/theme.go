package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type themesFile struct {
	Themes []manifestFile `yaml:"themes"`
}

type manifestFile struct {
	Name     string                 `yaml:"name"`
	Version  string                 `yaml:"version"`
	Tokens   map[string]string      `yaml:"tokens"`
	Assets   assetsFile             `yaml:"assets"`
	Variants map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Tokens map[string]string `yaml:"tokens"`
	Assets assetsFile        `yaml:"assets"`
}

type assetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

// Themes loads the manifests in ThemeFile into a go-theme registry. It
// returns nil when no file is configured.
func (c Config) Themes() (theme.ThemeProvider, error) {
	if strings.TrimSpace(c.ThemeFile) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.ThemeFile)
	if err != nil {
		return nil, fmt.Errorf("config: read themes: %w", err)
	}
	manifests, err := ParseThemes(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", c.ThemeFile, err)
	}

	registry := theme.NewRegistry()
	for _, manifest := range manifests {
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("config: register theme %q: %w", manifest.Name, err)
		}
	}
	return registry, nil
}

// ParseThemes decodes a YAML document with a top-level `themes` list.
func ParseThemes(data []byte) ([]*theme.Manifest, error) {
	var doc themesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid theme YAML: %w", err)
	}
	if len(doc.Themes) == 0 {
		return nil, errors.New("no themes defined")
	}

	manifests := make([]*theme.Manifest, 0, len(doc.Themes))
	for idx, raw := range doc.Themes {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			return nil, fmt.Errorf("theme #%d has no name", idx+1)
		}
		version := strings.TrimSpace(raw.Version)
		if version == "" {
			version = "0.0.0"
		}
		manifest := &theme.Manifest{
			Name:    name,
			Version: version,
			Tokens:  raw.Tokens,
			Assets:  theme.Assets{Prefix: raw.Assets.Prefix, Files: raw.Assets.Files},
		}
		if len(raw.Variants) > 0 {
			manifest.Variants = make(map[string]theme.Variant, len(raw.Variants))
			for key, variant := range raw.Variants {
				manifest.Variants[key] = theme.Variant{
					Tokens: variant.Tokens,
					Assets: theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
				}
			}
		}
		manifests = append(manifests, manifest)
	}
	return manifests, nil
}
