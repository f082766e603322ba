package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Output formats supported by the CLI.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName            string        `mapstructure:"app_name"`
	LogLevel           string        `mapstructure:"log_level"`
	ClientID           string        `mapstructure:"line_client_id"`
	ClientSecret       string        `mapstructure:"line_client_secret"`
	APIBaseURL         string        `mapstructure:"line_api_base_url"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
	OutputFormat       string        `mapstructure:"output_format"`
}

// Load reads configuration from environment variables and the optional configs/.env file.
func Load() (*Config, error) {
	return LoadFrom("configs/.env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is ignored.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	v := viper.New()

	v.SetDefault("app_name", "lineloginctl")
	v.SetDefault("log_level", "info")
	v.SetDefault("line_client_id", "")
	v.SetDefault("line_client_secret", "")
	v.SetDefault("line_api_base_url", "https://api.line.me")
	v.SetDefault("http_timeout_seconds", 10)
	v.SetDefault("output_format", OutputJSON)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	if err := ValidateOutput(cfg.OutputFormat); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateOutput rejects output formats the CLI cannot render.
func ValidateOutput(format string) error {
	switch format {
	case OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("invalid output_format %q (expected %s or %s)", format, OutputJSON, OutputYAML)
	}
}
