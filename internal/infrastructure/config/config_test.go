package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "emtienda-pos", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.InDelta(t, 45.00, cfg.App.DefaultExchangeRate, 0.001)
	assert.Equal(t, "emtienda.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, int64(10<<20), cfg.HTTP.MaxBodySize)
	assert.Equal(t, 30*time.Second, cfg.Printing.RenderTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POS_APP_PORT", "9090")
	t.Setenv("POS_APP_ENV", "production")
	t.Setenv("POS_DATABASE_PATH", ":memory:")
	t.Setenv("POS_LOG_LEVEL", "debug")
	t.Setenv("POS_PRINTING_NO_SANDBOX", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Printing.NoSandbox)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Port: "8080", DefaultExchangeRate: 45.00},
			Database: DatabaseConfig{Path: "emtienda.db"},
		}
	}

	t.Run("accepts a sane config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects empty port", func(t *testing.T) {
		cfg := valid()
		cfg.App.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects empty database path", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Path = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive default rate", func(t *testing.T) {
		cfg := valid()
		cfg.App.DefaultExchangeRate = 0
		assert.Error(t, cfg.Validate())
	})
}
