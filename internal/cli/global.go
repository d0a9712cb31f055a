package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Simplici0/moldcost/internal/catalog"
	"github.com/Simplici0/moldcost/internal/config"
	"github.com/Simplici0/moldcost/internal/db"
	"github.com/Simplici0/moldcost/pkg/log"
)

// GlobalOptions carries the settings shared by every subcommand. Flags left
// unset fall back to the MOLDCOST_* environment.
type GlobalOptions struct {
	EnvFile     string
	LogLevel    string
	CatalogFile string
	CatalogDB   string

	cfg    *config.Config
	logger *zap.Logger
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.EnvFile, "env-file", o.EnvFile, "Dotenv file to load before reading the environment (default .env if present)")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&o.CatalogFile, "catalog", o.CatalogFile, "YAML or JSON reference catalog (default: embedded)")
	fs.StringVar(&o.CatalogDB, "catalog-db", o.CatalogDB, "SQLite reference catalog created by 'catalog init'")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.EnvFile)
	if err != nil {
		return err
	}

	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.CatalogFile != "" {
		cfg.CatalogFile = o.CatalogFile
		cfg.CatalogDB = ""
	}
	if o.CatalogDB != "" {
		cfg.CatalogDB = o.CatalogDB
		cfg.CatalogFile = ""
	}
	o.cfg = cfg
	return nil
}

// Validate checks the configuration once every flag override is applied.
func (o *GlobalOptions) Validate(args []string) error {
	if o.CatalogFile != "" && o.CatalogDB != "" {
		return fmt.Errorf("--catalog and --catalog-db are mutually exclusive")
	}
	if err := o.cfg.Validate(); err != nil {
		return err
	}

	lvl, err := log.ParseLevel(o.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	o.logger = log.InitLog(lvl)
	return nil
}

// Logger returns the logger built by Validate, or a no-op logger before that.
func (o *GlobalOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// Catalog loads the configured reference catalog.
func (o *GlobalOptions) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	logger := o.Logger()

	switch {
	case o.cfg.CatalogFile != "":
		c, err := catalog.LoadFile(o.cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", o.cfg.CatalogFile, err)
		}
		logger.Debug("catalog loaded", zap.String("source", "file"), zap.String("path", o.cfg.CatalogFile))
		return c, nil

	case o.cfg.CatalogDB != "":
		sqlDB, err := db.OpenReadOnly(ctx, o.cfg.CatalogDB)
		if err != nil {
			return nil, err
		}
		defer sqlDB.Close()

		c, err := catalog.LoadDB(ctx, sqlDB)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", o.cfg.CatalogDB, err)
		}
		logger.Debug("catalog loaded", zap.String("source", "sqlite"), zap.String("path", o.cfg.CatalogDB))
		return c, nil

	default:
		logger.Debug("catalog loaded", zap.String("source", "embedded"))
		return catalog.Default(), nil
	}
}

func (o *GlobalOptions) lookupMode(strict bool) catalog.LookupMode {
	if strict || o.cfg.StrictLookup {
		return catalog.LookupStrict
	}
	return catalog.LookupFallback
}

func (o *GlobalOptions) sync() {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
}
