package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultTranslateURL is the public endpoint of the Google web translator
const DefaultTranslateURL = "https://translate.googleapis.com/translate_a/single"

// Config holds all application configuration
type Config struct {
	BotToken        string `envconfig:"BOT_TOKEN"`
	ChannelUsername string `envconfig:"CHANNEL_USERNAME" default:"Traveler_01"`
	Port            string `envconfig:"PORT" default:"5000"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	SentryDSN       string `envconfig:"SENTRY_DSN"`

	PollTimeout time.Duration `envconfig:"POLL_TIMEOUT" default:"10s"`

	Translate  TranslateConfig
	Membership MembershipConfig
}

// TranslateConfig holds translation backend settings (TRANSLATE_* variables)
type TranslateConfig struct {
	URL          string        `envconfig:"URL" default:"https://translate.googleapis.com/translate_a/single"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"10s"`
	RetryBackoff time.Duration `envconfig:"RETRY_BACKOFF" default:"1s"`
}

// MembershipConfig holds channel membership check settings (MEMBERSHIP_* variables)
type MembershipConfig struct {
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.ChannelUsername == "" {
		return nil, fmt.Errorf("CHANNEL_USERNAME must not be empty")
	}

	return &cfg, nil
}

// Addr returns the listen address of the health endpoint
func (c *Config) Addr() string {
	return ":" + c.Port
}
