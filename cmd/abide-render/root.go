package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-abideform/internal/config"
	"github.com/goliatone/go-abideform/pkg/formdef"
	"github.com/goliatone/go-abideform/pkg/openapi"
	"github.com/goliatone/go-abideform/pkg/orchestrator"
	"github.com/goliatone/go-abideform/pkg/renderers/foundation"
)

// app carries state shared by subcommands once the root command has loaded
// configuration.
type app struct {
	envFile     string
	defPath     string
	openapiPath string

	cfg    config.Config
	logger *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "abide-render",
		Short:         "Render forms with Foundation Abide validation attributes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", envOr("ENV_FILE", ".env"), "dotenv file seeding ABIDE_* settings ($ABIDE_ENV_FILE)")
	flags.StringVar(&a.defPath, "def", config.Getenv("DEF"), "form definition file or directory, YAML/JSON ($ABIDE_DEF)")
	flags.StringVar(&a.openapiPath, "openapi", config.Getenv("OPENAPI"), "OpenAPI document; forms are operation ids ($ABIDE_OPENAPI)")

	root.AddCommand(
		newRenderCmd(a),
		newPatternsCmd(a),
		newFormsCmd(a),
		newCheckCmd(a),
	)
	return root
}

// envOr reads a prefixed variable for a flag default. Flags are defined
// before --env-file is read, so only the process environment applies.
func envOr(key, fallback string) string {
	if value := config.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (a *app) init() error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// source opens the configured form source. Exactly one of --def and --openapi
// must be set.
func (a *app) source(ctx context.Context) (orchestrator.FormSource, []string, error) {
	switch {
	case a.defPath != "" && a.openapiPath != "":
		return nil, nil, errors.New("use either --def or --openapi, not both")
	case a.defPath != "":
		store, err := a.definitions()
		if err != nil {
			return nil, nil, err
		}
		return orchestrator.DefinitionSource(store), store.IDs(), nil
	case a.openapiPath != "":
		doc, err := openapi.LoadFile(ctx, a.openapiPath)
		if err != nil {
			return nil, nil, err
		}
		var ids []string
		for _, op := range doc.Operations() {
			ids = append(ids, op.ID)
		}
		builder := openapi.NewBuilder(openapi.WithLogger(a.logger))
		return orchestrator.OpenAPISource(doc, builder), ids, nil
	default:
		return nil, nil, errors.New("one of --def or --openapi is required")
	}
}

func (a *app) definitions() (*formdef.Store, error) {
	info, err := os.Stat(a.defPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return formdef.LoadFS(os.DirFS(a.defPath))
	}
	data, err := os.ReadFile(a.defPath)
	if err != nil {
		return nil, err
	}
	return formdef.Parse(data, filepath.Base(a.defPath))
}

func (a *app) orchestrator(namedPatterns bool) (*orchestrator.Orchestrator, error) {
	var opts []foundation.Option
	if namedPatterns || a.cfg.NamedPatterns {
		opts = append(opts, foundation.WithNamedPatterns())
	}
	options := []orchestrator.Option{
		orchestrator.WithLogger(a.logger),
		orchestrator.WithFoundationOptions(opts...),
	}

	themes, err := a.cfg.Themes()
	if err != nil {
		return nil, err
	}
	if themes != nil {
		options = append(options, orchestrator.WithThemeProvider(themes, a.cfg.Theme, a.cfg.ThemeVariant))
	}
	return orchestrator.New(options...), nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	_, err := fmt.Fprintf(cmd.ErrOrStderr(), "written to %s\n", path)
	return err
}
