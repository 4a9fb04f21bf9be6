package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the complete finplan configuration
type Config struct {
	User    UserConfig    `json:"user" yaml:"user"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Log     LogConfig     `json:"log" yaml:"log"`
	Display DisplayConfig `json:"display" yaml:"display"`
}

// UserConfig selects whose records the CLI works on
type UserConfig struct {
	ID string `json:"id" yaml:"id"`
}

// StoreConfig contains persistence parameters
type StoreConfig struct {
	Type   string `json:"type" yaml:"type"` // only "sqlite" for now
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // any logrus level
	Format string `json:"format" yaml:"format"` // "text" or "json"
}

// DisplayConfig contains presentation parameters
type DisplayConfig struct {
	HistoryLimit int `json:"history_limit" yaml:"history_limit"`
}

// LoadFromFile loads configuration from a file (JSON or YAML)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.User.ID == "" {
		return fmt.Errorf("user.id is required")
	}
	if c.Store.Type != "sqlite" {
		return fmt.Errorf("store.type must be 'sqlite'")
	}
	if c.Store.DBPath == "" {
		return fmt.Errorf("store db_path required for SQLite type")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'text' or 'json'")
	}
	if c.Display.HistoryLimit <= 0 {
		return fmt.Errorf("display.history_limit must be positive")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		User: UserConfig{
			ID: "local",
		},
		Store: StoreConfig{
			Type:   "sqlite",
			DBPath: "./finplan.sqlite",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Display: DisplayConfig{
			HistoryLimit: 5,
		},
	}
}
