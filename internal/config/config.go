// Package config holds the runtime settings shared by the webhook server and the Lambda handler.
package config

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"os"
)

const (
	DefaultRunAddr      = ":8080"
	DefaultLogLevel     = "info"
	DefaultGitHubAPIURL = "https://api.github.com"
	DefaultUserAgent    = "https"
	DefaultLocale       = "en"
)

type Config struct {
	RunAddr       string `validate:"required"`
	LogLevel      string `validate:"oneof=debug info warn error dpanic panic fatal"`
	GitHubAPIURL  string `validate:"required,url"`
	UserAgent     string `validate:"required"`
	DefaultLocale string `validate:"required,bcp47_language_tag"`
}

func Default() Config {
	return Config{
		RunAddr:       DefaultRunAddr,
		LogLevel:      DefaultLogLevel,
		GitHubAPIURL:  DefaultGitHubAPIURL,
		UserAgent:     DefaultUserAgent,
		DefaultLocale: DefaultLocale,
	}
}

// ApplyEnv overrides fields with any non-empty environment variables.
func (c *Config) ApplyEnv() {
	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		c.RunAddr = envRunAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		c.LogLevel = envLogLevel
	}

	if envAPIURL := os.Getenv("GITHUB_API_URL"); envAPIURL != "" {
		c.GitHubAPIURL = envAPIURL
	}

	if envUserAgent := os.Getenv("USER_AGENT"); envUserAgent != "" {
		c.UserAgent = envUserAgent
	}

	if envLocale := os.Getenv("DEFAULT_LOCALE"); envLocale != "" {
		c.DefaultLocale = envLocale
	}
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
