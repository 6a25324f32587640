package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Advisor:   ServiceConfig{Port: "5000"},
		Kanoon:    ServiceConfig{Port: "5001"},
		News:      ServiceConfig{Port: "5002"},
		OpenAI:    OpenAIConfig{APIKey: "sk-test"},
		KanoonAPI: ProviderConfig{BaseURL: "https://api.indiankanoon.org", APIKey: "ik-test"},
		NewsAPI:   ProviderConfig{BaseURL: "https://newsapi.org/v2", APIKey: "news-test"},
		Log:       LogConfig{Level: "info"},
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error: %v", err)
	}

	if cfg.Advisor.Port != "5000" {
		t.Errorf("advisor port = %q, want 5000", cfg.Advisor.Port)
	}
	if cfg.Kanoon.Port != "5001" {
		t.Errorf("kanoon port = %q, want 5001", cfg.Kanoon.Port)
	}
	if cfg.News.Port != "5002" {
		t.Errorf("news port = %q, want 5002", cfg.News.Port)
	}
	if cfg.KanoonAPI.BaseURL != "https://api.indiankanoon.org" {
		t.Errorf("kanoon base URL = %q", cfg.KanoonAPI.BaseURL)
	}
	if cfg.NewsAPI.BaseURL != "https://newsapi.org/v2" {
		t.Errorf("news base URL = %q", cfg.NewsAPI.BaseURL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFromEnv_ReadsEnvironment(t *testing.T) {
	t.Setenv("ADVISOR_PORT", "8080")
	t.Setenv("OPENAI_API_KEY", "sk-live")
	t.Setenv("OPENAI_MODEL", "gpt-4")
	t.Setenv("NEWSAPI_BASE_URL", "http://localhost:9999/v2")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error: %v", err)
	}

	if cfg.Advisor.Port != "8080" {
		t.Errorf("advisor port = %q, want 8080", cfg.Advisor.Port)
	}
	if cfg.OpenAI.APIKey != "sk-live" {
		t.Errorf("openai key = %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4" {
		t.Errorf("openai model = %q", cfg.OpenAI.Model)
	}
	if cfg.NewsAPI.BaseURL != "http://localhost:9999/v2" {
		t.Errorf("news base URL = %q", cfg.NewsAPI.BaseURL)
	}
}

func TestValidate_AcceptsCompleteConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestValidate_RejectsMissingValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing advisor port",
			mutate:  func(c *Config) { c.Advisor.Port = "" },
			wantErr: "ports",
		},
		{
			name:    "missing openai key",
			mutate:  func(c *Config) { c.OpenAI.APIKey = "" },
			wantErr: "OPENAI_API_KEY",
		},
		{
			name:    "missing kanoon key",
			mutate:  func(c *Config) { c.KanoonAPI.APIKey = "" },
			wantErr: "INDIANKANOON_API_KEY",
		},
		{
			name:    "missing kanoon base URL",
			mutate:  func(c *Config) { c.KanoonAPI.BaseURL = "" },
			wantErr: "base URL",
		},
		{
			name:    "missing news key",
			mutate:  func(c *Config) { c.NewsAPI.APIKey = "" },
			wantErr: "NEWS_API_KEY",
		},
		{
			name:    "missing news base URL",
			mutate:  func(c *Config) { c.NewsAPI.BaseURL = "" },
			wantErr: "base URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}
