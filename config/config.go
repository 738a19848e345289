// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/fossclubsrm/forms-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"

	// DefaultMongoURI is the local fallback used when neither MONGODB_URI nor
	// DATABASE_URL is set.
	DefaultMongoURI = "mongodb://localhost:27017/fossclubsrm"
)

// FeedbackSchema selects which feedback validation schema variant is active.
type FeedbackSchema string

const (
	SchemaSimple   FeedbackSchema = "simple"
	SchemaExtended FeedbackSchema = "extended"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	LogLevel       string      `mapstructure:"LOG_LEVEL" yaml:"log_level"`
}

// DatabaseConfig holds MongoDB connection details.
type DatabaseConfig struct {
	// URI is the resolved connection string including the localhost fallback.
	URI string `mapstructure:"URI" yaml:"uri"`
	// Name is the database name documents are written to.
	Name string `mapstructure:"NAME" yaml:"name"`
	// URIFromEnv records whether a connection string was actually supplied
	// via MONGODB_URI or DATABASE_URL. The feedback submission path fails
	// fast when it is false instead of relying on the fallback.
	URIFromEnv bool `mapstructure:"-" yaml:"-"`
}

// FeedbackConfig selects the active feedback schema variant.
type FeedbackConfig struct {
	Schema FeedbackSchema `mapstructure:"SCHEMA" yaml:"schema"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server   ServerConfig   `mapstructure:"SERVER" yaml:"server"`
	Database DatabaseConfig `mapstructure:"DATABASE" yaml:"database"`
	Feedback FeedbackConfig `mapstructure:"FEEDBACK" yaml:"feedback"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// resolveMongoURI applies the connection string resolution order used by the
// server since its first deployment: MONGODB_URI, then DATABASE_URL, then a
// local default.
func resolveMongoURI() (uri string, fromEnv bool) {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri, true
	}
	if uri := os.Getenv("DATABASE_URL"); uri != "" {
		return uri, true
	}
	return DefaultMongoURI, false
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.LOG_LEVEL", "info")
	v.SetDefault("DATABASE.NAME", "fossclubsrm")
	v.SetDefault("FEEDBACK.SCHEMA", SchemaSimple)

	bindings := [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.LOG_LEVEL", "LOG_LEVEL"},
		{"DATABASE.NAME", "DATABASE_NAME"},
		{"FEEDBACK.SCHEMA", "FEEDBACK_SCHEMA"},
	}
	if err := bindEnvVars(v, bindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Database.URI, cfg.Database.URIFromEnv = resolveMongoURI()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !cfg.Database.URIFromEnv {
		log.Warnw("No MONGODB_URI or DATABASE_URL set, using local default",
			"uri", logger.MaskConnectionString(cfg.Database.URI))
	}

	return &cfg, nil
}

// Validate checks that the loaded configuration is coherent. It runs once at
// process start; configuration is never re-validated per request.
func (c *Config) Validate() error {
	switch c.Server.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("invalid environment: %q", c.Server.Environment)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}

	switch c.Feedback.Schema {
	case SchemaSimple, SchemaExtended:
	default:
		return fmt.Errorf("invalid feedback schema variant: %q", c.Feedback.Schema)
	}

	if c.Database.Name == "" {
		return fmt.Errorf("database name must not be empty")
	}

	return nil
}
