// Package config loads CLI settings from the environment (prefix ABIDE_),
// optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/validators"
)

// Prefix namespaces every environment variable read by Load.
const Prefix = "ABIDE_"

// Config holds the CLI settings.
type Config struct {
	Locale        string   `env:"LOCALE" envDefault:"en"`
	NamedPatterns bool     `env:"NAMED_PATTERNS"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat     string   `env:"LOG_FORMAT" envDefault:"console"`
	PageTitle     string   `env:"PAGE_TITLE" envDefault:"Form preview"`
	Stylesheets   []string `env:"STYLESHEETS" envSeparator:","`
	Scripts       []string `env:"SCRIPTS" envSeparator:","`
	// ThemeFile lists go-theme manifests (YAML) that supply preview assets.
	ThemeFile    string `env:"THEME_FILE"`
	Theme        string `env:"THEME"`
	ThemeVariant string `env:"THEME_VARIANT"`
}

// Load reads the supplied .env files (missing files are skipped) and parses
// the environment into a Config.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if strings.TrimSpace(file) == "" {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return parse(env.Options{Prefix: Prefix})
}

// FromMap parses settings from an explicit variable map instead of the
// process environment. Keys carry the prefix.
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return Config{}, fmt.Errorf("config: unsupported log format %q", cfg.LogFormat)
	}
	return cfg, nil
}

// Logger builds the zap logger described by the config. Output goes to
// stderr so rendered markup on stdout stays clean.
func (c Config) Logger() (*zap.SugaredLogger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	if c.LogFormat == "console" {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.Level = level
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// Translator returns the validator message translator for the configured
// locale.
func (c Config) Translator() model.Translator {
	return validators.TranslatorFor(c.Locale)
}

// Getenv reads a prefixed variable from the process environment. The CLI
// uses it for flag defaults.
func Getenv(key string) string {
	return os.Getenv(Prefix + key)
}
