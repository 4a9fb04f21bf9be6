package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "local", cfg.User.ID)
	assert.Equal(t, "sqlite", cfg.Store.Type)
	assert.Equal(t, 5, cfg.Display.HistoryLimit)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func(mod func(*Config)) *Config {
		cfg := Default()
		mod(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  Default(),
			wantErr: false,
		},
		{
			name:    "missing user",
			config:  valid(func(c *Config) { c.User.ID = "" }),
			wantErr: true,
			errMsg:  "user.id is required",
		},
		{
			name:    "unknown store",
			config:  valid(func(c *Config) { c.Store.Type = "postgres" }),
			wantErr: true,
			errMsg:  "store.type must be 'sqlite'",
		},
		{
			name:    "missing db path",
			config:  valid(func(c *Config) { c.Store.DBPath = "" }),
			wantErr: true,
			errMsg:  "store db_path required",
		},
		{
			name:    "bad log level",
			config:  valid(func(c *Config) { c.Log.Level = "loud" }),
			wantErr: true,
			errMsg:  "log.level",
		},
		{
			name:    "bad log format",
			config:  valid(func(c *Config) { c.Log.Format = "xml" }),
			wantErr: true,
			errMsg:  "log.format must be 'text' or 'json'",
		},
		{
			name:    "zero history limit",
			config:  valid(func(c *Config) { c.Display.HistoryLimit = 0 }),
			wantErr: true,
			errMsg:  "display.history_limit must be positive",
		},
		{
			name:    "debug json logging",
			config:  valid(func(c *Config) { c.Log = LogConfig{Level: "debug", Format: "json"} }),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
		{"yml format", ".yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.User.ID = "camille"
			cfg.Display.HistoryLimit = 10
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user:\n  id: dominique\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dominique", cfg.User.ID)
	assert.Equal(t, Default().Store, cfg.Store)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  type: csv\n"), 0644))
	_, err = LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("user", "u1").Debug("metrics computed")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "metrics computed", line["msg"])
	assert.Equal(t, "u1", line["user"])

	_, err = NewLogger(LogConfig{Level: "nope", Format: "text"})
	assert.Error(t, err)
}
