// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the three services and their providers

package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Advisor is the chat/document analysis service configuration
	Advisor ServiceConfig

	// Kanoon is the legal search facade configuration
	Kanoon ServiceConfig

	// News is the news aggregation service configuration
	News ServiceConfig

	// OpenAI contains chat model credentials
	OpenAI OpenAIConfig

	// KanoonAPI contains legal search provider credentials
	KanoonAPI ProviderConfig

	// NewsAPI contains news provider credentials
	NewsAPI ProviderConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServiceConfig holds per-service HTTP server configuration
type ServiceConfig struct {
	// Port is the HTTP server port; each service binds its own
	Port string
}

// OpenAIConfig holds chat model settings
type OpenAIConfig struct {
	// APIKey authenticates against the OpenAI API
	APIKey string

	// Model is the chat model name
	Model string
}

// ProviderConfig holds settings for an external HTTP provider
type ProviderConfig struct {
	// BaseURL is the provider API root
	BaseURL string

	// APIKey authenticates against the provider
	APIKey string
}

// LogConfig holds logging settings
type LogConfig struct {
	// Level is the minimum log level
	Level string

	// File, when set, enables rotating file output
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ADVISOR_PORT", "5000")
	v.SetDefault("KANOON_PORT", "5001")
	v.SetDefault("NEWS_PORT", "5002")
	v.SetDefault("OPENAI_MODEL", "")
	v.SetDefault("INDIANKANOON_BASE_URL", "https://api.indiankanoon.org")
	v.SetDefault("NEWSAPI_BASE_URL", "https://newsapi.org/v2")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	cfg := &Config{
		Advisor: ServiceConfig{Port: v.GetString("ADVISOR_PORT")},
		Kanoon:  ServiceConfig{Port: v.GetString("KANOON_PORT")},
		News:    ServiceConfig{Port: v.GetString("NEWS_PORT")},
		OpenAI: OpenAIConfig{
			APIKey: v.GetString("OPENAI_API_KEY"),
			Model:  v.GetString("OPENAI_MODEL"),
		},
		KanoonAPI: ProviderConfig{
			BaseURL: v.GetString("INDIANKANOON_BASE_URL"),
			APIKey:  v.GetString("INDIANKANOON_API_KEY"),
		},
		NewsAPI: ProviderConfig{
			BaseURL: v.GetString("NEWSAPI_BASE_URL"),
			APIKey:  v.GetString("NEWS_API_KEY"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
// A missing provider API key is fatal: every service depends on at least one.
func (c *Config) Validate() error {
	if c.Advisor.Port == "" || c.Kanoon.Port == "" || c.News.Port == "" {
		return errors.New("service ports cannot be empty")
	}

	if c.OpenAI.APIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}

	if c.KanoonAPI.APIKey == "" {
		return errors.New("INDIANKANOON_API_KEY is required")
	}

	if c.KanoonAPI.BaseURL == "" {
		return errors.New("indian kanoon base URL cannot be empty")
	}

	if c.NewsAPI.APIKey == "" {
		return errors.New("NEWS_API_KEY is required")
	}

	if c.NewsAPI.BaseURL == "" {
		return errors.New("news API base URL cannot be empty")
	}

	return nil
}
