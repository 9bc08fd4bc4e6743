package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

type AnthropicConfig struct {
	APIKey         string `json:"api_key"`
	BaseURL        string `json:"base_url"`
	Model          string `json:"model"`
	Version        string `json:"version"`
	MaxTokens      int    `json:"max_tokens"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	UseSDK         bool   `json:"use_sdk"`
}

func (a AnthropicConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type HolidaysConfig struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	DefaultCountry string `json:"default_country"`
	CacheTTLHours  int    `json:"cache_ttl_hours"`
}

func (h HolidaysConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

func (h HolidaysConfig) CacheTTL() time.Duration {
	return time.Duration(h.CacheTTLHours) * time.Hour
}

type Config struct {
	Server struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	} `json:"server"`
	Anthropic AnthropicConfig `json:"anthropic"`
	Holidays  HolidaysConfig  `json:"holidays"`
	Redis     struct {
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
		Enabled  bool   `json:"enabled"`
	} `json:"redis"`
	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage"`
	AllowMocks bool `json:"allow_mocks"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton). The ANTHROPIC_API_KEY
// environment variable, when set, overrides the file value so keys can stay
// out of the config file.
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		applyDefaults(&c)
		if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
			c.Anthropic.APIKey = key
		}
		// Minimal validation
		if c.Anthropic.BaseURL == "" {
			cfgErr = errors.New("anthropic.base_url must be set in config")
			return
		}
		cfg = &c
	})
	return cfg, cfgErr
}

func applyDefaults(c *Config) {
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Anthropic.Model == "" {
		c.Anthropic.Model = "claude-sonnet-4-5"
	}
	if c.Anthropic.Version == "" {
		// API version header, not a model date. Azure rejects anything else.
		c.Anthropic.Version = "2023-06-01"
	}
	if c.Anthropic.MaxTokens == 0 {
		c.Anthropic.MaxTokens = 400
	}
	if c.Anthropic.TimeoutSeconds == 0 {
		c.Anthropic.TimeoutSeconds = 30
	}
	if c.Holidays.BaseURL == "" {
		c.Holidays.BaseURL = "https://date.nager.at"
	}
	if c.Holidays.TimeoutSeconds == 0 {
		c.Holidays.TimeoutSeconds = 5
	}
	if c.Holidays.DefaultCountry == "" {
		c.Holidays.DefaultCountry = "PL"
	}
	if c.Holidays.CacheTTLHours == 0 {
		c.Holidays.CacheTTLHours = 24
	}
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
