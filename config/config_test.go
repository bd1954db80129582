package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/fifokit/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 4, cfg.Demo.Capacity)
	assert.Equal(t, 6, cfg.Demo.Items)
	assert.Equal(t, "( entry [%d] )", cfg.Demo.NameTemplate)
	assert.False(t, cfg.Demo.Dump)
	assert.Equal(t, 0, cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `{
		"demo": {
			"capacity": 8,
			"items": 12,
			"name_template": "item-%d",
			"dump": true,
			"retry_full": true
		},
		"metrics": {
			"port": 9091
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Demo.Capacity)
	assert.Equal(t, 12, cfg.Demo.Items)
	assert.Equal(t, "item-%d", cfg.Demo.NameTemplate)
	assert.True(t, cfg.Demo.Dump)
	assert.True(t, cfg.Demo.RetryFull)
	assert.Equal(t, 9091, cfg.Metrics.Port)
	// Unset fields keep defaults
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfigNotFound)
	assert.True(t, errors.IsFatal(err))
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"demo": {`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FIFOKIT_CAPACITY", "16")
	t.Setenv("FIFOKIT_ITEMS", "20")
	t.Setenv("FIFOKIT_DUMP", "true")
	t.Setenv("FIFOKIT_METRICS_PORT", "9999")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Demo.Capacity)
	assert.Equal(t, 20, cfg.Demo.Items)
	assert.True(t, cfg.Demo.Dump)
	assert.Equal(t, 9999, cfg.Metrics.Port)
}

func TestLoad_EnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv("FIFOKIT_CAPACITY", "not-a-number")
	t.Setenv("FIFOKIT_DUMP", "maybe")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Demo.Capacity)
	assert.False(t, cfg.Demo.Dump)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero capacity", func(c *Config) { c.Demo.Capacity = 0 }, false},
		{"negative capacity", func(c *Config) { c.Demo.Capacity = -1 }, false},
		{"negative items", func(c *Config) { c.Demo.Items = -1 }, false},
		{"zero items", func(c *Config) { c.Demo.Items = 0 }, true},
		{"empty template", func(c *Config) { c.Demo.NameTemplate = "" }, false},
		{"negative rate", func(c *Config) { c.Demo.Rate = -1 }, false},
		{"port too large", func(c *Config) { c.Metrics.Port = 70000 }, false},
		{"negative port", func(c *Config) { c.Metrics.Port = -1 }, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)

			err := cfg.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsFatal(err))
			}
		})
	}
}
