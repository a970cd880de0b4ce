// Package config provides configuration management for wpp.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the wpp configuration.
type Config struct {
	SiteURL       string `yaml:"site_url"`
	Username      string `yaml:"username"`
	AppPassword   string `yaml:"app_password"`
	DefaultStatus string `yaml:"default_status,omitempty"`
	OutputFormat  string `yaml:"output_format,omitempty"`
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	if c.SiteURL == "" {
		return errors.New("site_url is required")
	}
	if c.Username == "" {
		return errors.New("username is required")
	}
	if c.AppPassword == "" {
		return errors.New("app_password is required")
	}

	// Application passwords only work over TLS.
	if !strings.HasPrefix(c.SiteURL, "https://") {
		return errors.New("site_url must use https")
	}

	return nil
}

// NormalizeURL strips the pieces people paste in by accident: a
// trailing slash and an explicit /wp-json suffix (the client appends
// the REST route itself).
func (c *Config) NormalizeURL() {
	c.SiteURL = strings.TrimSuffix(c.SiteURL, "/")
	c.SiteURL = strings.TrimSuffix(c.SiteURL, "/wp-json")
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Precedence: WPP_* → WORDPRESS_* → existing config value
func (c *Config) LoadFromEnv() {
	if url := getEnvWithFallback("WPP_SITE_URL", "WORDPRESS_SITE_URL"); url != "" {
		c.SiteURL = url
	}
	if user := getEnvWithFallback("WPP_USERNAME", "WORDPRESS_USERNAME"); user != "" {
		c.Username = user
	}
	if pass := getEnvWithFallback("WPP_APP_PASSWORD", "WORDPRESS_APP_PASSWORD"); pass != "" {
		c.AppPassword = pass
	}
	if status := os.Getenv("WPP_DEFAULT_STATUS"); status != "" {
		c.DefaultStatus = status
	}
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "wpp", "config.yml")
	}

	// Fall back to ~/.config/wpp/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".wpp", "config.yml")
	}

	return filepath.Join(home, ".config", "wpp", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with restricted permissions (user read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
