package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreFile     = "file"
)

// Config is the process configuration, read from the environment (and .env).
type Config struct {
	Port           string `mapstructure:"port"`
	GinMode        string `mapstructure:"gin_mode"`
	LogLevel       string `mapstructure:"log_level"`
	StoreDriver    string `mapstructure:"store_driver"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`

	AWSRegion          string `mapstructure:"aws_region"`
	AWSAccessKeyID     string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint   string `mapstructure:"dynamodb_endpoint"`
	QuotationsTable    string `mapstructure:"quotations_table"`

	DatabaseURL    string `mapstructure:"database_url"`
	QuotationsFile string `mapstructure:"quotations_file"`
}

var defaults = map[string]any{
	"port":                  "8080",
	"gin_mode":              "",
	"log_level":             "info",
	"store_driver":          StoreDynamoDB,
	"metrics_enabled":       false,
	"aws_region":            "us-east-1",
	"aws_access_key_id":     "local",
	"aws_secret_access_key": "local",
	"dynamodb_endpoint":     "",
	"quotations_table":      "quotations",
	"database_url":          "",
	"quotations_file":       "quotations.json",
}

// New returns a viper instance with defaults registered and environment
// lookup enabled. Callers may bind flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load decodes v into a Config and checks the store selection.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	switch cfg.StoreDriver {
	case StoreDynamoDB, StoreFile:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q (expected dynamodb, postgres or file)", cfg.StoreDriver)
	}
	return &cfg, nil
}
