package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromMapDefaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Config{
		Locale:    "en",
		LogLevel:  "warn",
		LogFormat: "console",
		PageTitle: "Form preview",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"ABIDE_LOCALE":         "de",
		"ABIDE_NAMED_PATTERNS": "true",
		"ABIDE_LOG_FORMAT":     "json",
		"ABIDE_STYLESHEETS":    "/a.css,/b.css",
		"LOCALE":               "fr",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Locale != "de" || !cfg.NamedPatterns || cfg.LogFormat != "json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if diff := cmp.Diff([]string{"/a.css", "/b.css"}, cfg.Stylesheets); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.Translator().Translate("Invalid email address."); got != "Ungültige E-Mail-Adresse." {
		t.Fatalf("expected german translator, got %q", got)
	}
}

func TestFromMapRejectsInvalidValues(t *testing.T) {
	if _, err := FromMap(map[string]string{"ABIDE_LOG_FORMAT": "xml"}); err == nil {
		t.Fatalf("expected log format error")
	}
	if _, err := FromMap(map[string]string{"ABIDE_NAMED_PATTERNS": "maybe"}); err == nil {
		t.Fatalf("expected bool parse error")
	}
}

func TestLogger(t *testing.T) {
	logger, err := Config{LogLevel: "debug", LogFormat: "json"}.Logger()
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	if !logger.Desugar().Core().Enabled(-1) {
		t.Fatalf("expected debug level enabled")
	}
	if _, err := (Config{LogLevel: "loud", LogFormat: "json"}).Logger(); err == nil {
		t.Fatalf("expected invalid level error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ABIDE_PAGE_TITLE=From dotenv\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("ABIDE_PAGE_TITLE") })

	cfg, err := Load(filepath.Join(dir, "missing.env"), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PageTitle != "From dotenv" {
		t.Fatalf("expected dotenv value, got %q", cfg.PageTitle)
	}
	if Getenv("PAGE_TITLE") != "From dotenv" {
		t.Fatalf("expected Getenv to read the prefixed variable")
	}
}
