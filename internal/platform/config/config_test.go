package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.False(t, cfg.EnableDBCheck)
	assert.Equal(t, "https://www.bookmyforex.com", cfg.ForexProviderBaseURL)
	assert.Equal(t, "DEL", cfg.DefaultCityCode)
	assert.Equal(t, "60-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://eu.i.posthog.com", cfg.PosthogEndpoint)
}

func TestLoadFrom_Environment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/forex")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("FOREX_PROVIDER_BASE_URL", "http://127.0.0.1:8081/")
	t.Setenv("DEFAULT_CITY_CODE", "mum")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/forex", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "http://127.0.0.1:8081", cfg.ForexProviderBaseURL)
	assert.Equal(t, "MUM", cfg.DefaultCityCode)
	assert.Empty(t, cfg.RateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadFrom_InvalidBoolDefaultsToFalse(t *testing.T) {
	t.Setenv("ENABLE_DB_CHECK", "sometimes")

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)
	assert.False(t, cfg.EnableDBCheck)
}
