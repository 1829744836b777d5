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
	assert.Equal(t, "muebleria-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "muebleria", cfg.Database.DBName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodySize)
	assert.Equal(t, 10*time.Second, cfg.Sale.TransactionTimeout)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MUEBLERIA_APP_PORT", "9090")
	t.Setenv("MUEBLERIA_DATABASE_PASSWORD", "secret")
	t.Setenv("MUEBLERIA_SALE_TRANSACTION_TIMEOUT", "5s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 5*time.Second, cfg.Sale.TransactionTimeout)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("accepts defaults", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("rejects idle conns above open conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.MaxIdleConns = 50

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
	})

	t.Run("rejects production without password", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("rejects wildcard CORS in production", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.Database.Password = "secret"
		cfg.Database.SSLMode = "require"
		cfg.HTTP.CORSAllowOrigins = []string{"*"}

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})

	t.Run("rejects sampling ratio above one", func(t *testing.T) {
		cfg := base()
		cfg.Telemetry.SamplingRatio = 1.5

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})

	t.Run("rejects sub-second transaction timeout", func(t *testing.T) {
		cfg := base()
		cfg.Sale.TransactionTimeout = 500 * time.Millisecond

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transaction_timeout")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "muebleria",
		Password: "p@ss/word",
		DBName:   "muebleria",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word", "password must be URL-escaped")
}
