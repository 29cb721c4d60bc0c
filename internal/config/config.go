package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/osa911/contactus/internal/contact"
	"github.com/osa911/contactus/internal/logging"
)

// Output formats of the submission record.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputText = "text"
)

// ErrInvalidConfig is shared with the logging package so one errors.Is check
// covers both.
var ErrInvalidConfig = logging.ErrInvalidConfig

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"CONTACTUS_ENV" envDefault:"development"`

	// Logging Configuration
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`

	// Form Configuration
	OutputFormat   string `env:"CONTACTUS_OUTPUT" envDefault:"json"`
	SuccessMessage string `env:"CONTACTUS_SUCCESS_MESSAGE"`
	FailureMessage string `env:"CONTACTUS_FAILURE_MESSAGE"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"contactus"`
}

// Load loads the configuration from environment variables and .env files.
// Explicit envFiles must exist. Without them the first default location that
// exists is loaded. Variables already set in the environment win over files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else {
		envLocations := []string{".env"}
		// If CONTACTUS_ENV is set, try to load that specific file first
		if envName := os.Getenv("CONTACTUS_ENV"); envName != "" {
			envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
		}

		for _, loc := range envLocations {
			if err := godotenv.Load(loc); err == nil {
				break
			}
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SuccessMessage == "" {
		cfg.SuccessMessage = contact.DefaultSuccessMessage
	}
	if cfg.FailureMessage == "" {
		cfg.FailureMessage = contact.DefaultFailureMessage
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case OutputJSON, OutputYAML, OutputText:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.OutputFormat)
	}

	return c.Logging().Validate()
}

// Logging returns the logger configuration.
func (c *Config) Logging() *logging.Config {
	return &logging.Config{
		Level:      c.LogLevel,
		File:       c.LogFile,
		MaxSize:    c.LogMaxSize,
		MaxBackups: c.LogMaxBackups,
		MaxAge:     c.LogMaxAge,
	}
}
