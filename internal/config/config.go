package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/Simplici0/moldcost/internal/estimate"
)

const defaultEnvFile = ".env"

// Config holds application configuration sourced from environment variables.
type Config struct {
	LogLevel      string `envconfig:"MOLDCOST_LOG_LEVEL" default:"info"`
	CatalogFile   string `envconfig:"MOLDCOST_CATALOG_FILE" default:""`
	CatalogDB     string `envconfig:"MOLDCOST_CATALOG_DB" default:""`
	StrictLookup  bool   `envconfig:"MOLDCOST_STRICT_LOOKUP" default:"false"`
	MaterialModel string `envconfig:"MOLDCOST_MATERIAL_MODEL" default:"flat"`
}

// Load reads an optional dotenv file, then the environment. Variables already
// set in the environment win over the file. An empty envFile means ".env",
// which may be missing; an explicit file must exist. The result is not
// validated, so callers can apply their own overrides before Validate.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed loading env file %s: %w", defaultEnvFile, err)
	}

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

// Validate rejects unknown log levels and material models, and more than one
// catalog source.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("MOLDCOST_LOG_LEVEL: %w", err)
	}
	if _, err := estimate.ParseMaterialModel(c.MaterialModel); err != nil {
		return fmt.Errorf("MOLDCOST_MATERIAL_MODEL: %w", err)
	}
	if c.CatalogFile != "" && c.CatalogDB != "" {
		return errors.New("MOLDCOST_CATALOG_FILE and MOLDCOST_CATALOG_DB are mutually exclusive")
	}
	return nil
}
