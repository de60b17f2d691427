package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultSourceURL is the front page this tool scrapes.
const DefaultSourceURL = "https://news.ycombinator.com"

// Config holds the application configuration loaded from the environment.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	SourceURL string `mapstructure:"source_url"`
	UserAgent string `mapstructure:"user_agent"`

	FetchTimeoutSeconds int64         `mapstructure:"fetch_timeout_seconds"`
	FetchTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables, falling back to the
// defaults that reproduce the tool's documented fixed behavior.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("app_name", "hn-headlines")
	v.SetDefault("app_env", "production")
	v.SetDefault("log_level", "error")
	v.SetDefault("source_url", DefaultSourceURL)
	v.SetDefault("user_agent", "Mozilla/5.0")
	v.SetDefault("fetch_timeout_seconds", 10)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.SourceURL == "" {
		return nil, fmt.Errorf("source_url must not be empty")
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid fetch_timeout_seconds (must be positive seconds)")
	}
	cfg.FetchTimeout = time.Duration(cfg.FetchTimeoutSeconds) * time.Second

	return &cfg, nil
}
