package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort              = "8080"
	defaultForexProviderURL  = "https://www.bookmyforex.com"
	defaultCityCode          = "DEL"
	defaultRateLimit         = "60-M"
	defaultCORSAllowedOrigin = "*"
	defaultPosthogEndpoint   = "https://eu.i.posthog.com"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL          string
	Port                 string
	IsProduction         bool
	EnableDBCheck        bool
	ForexProviderBaseURL string
	DefaultCityCode      string
	RateLimit            string // ulule formatted rate, e.g. "60-M"; empty disables limiting
	CORSAllowedOrigins   []string
	PosthogAPIKey        string
	PosthogEndpoint      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("FOREX_PROVIDER_BASE_URL", defaultForexProviderURL)
	v.SetDefault("DEFAULT_CITY_CODE", defaultCityCode)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSAllowedOrigin)
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", defaultPosthogEndpoint)

	// Environment variables override .env values, which override defaults.
	// An empty RATE_LIMIT must be able to disable limiting.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          strings.TrimSpace(v.GetString("DATABASE_URL")),
		Port:                 strings.TrimSpace(v.GetString("PORT")),
		IsProduction:         getBool(v, "IS_PRODUCTION"),
		EnableDBCheck:        getBool(v, "ENABLE_DB_CHECK"),
		ForexProviderBaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("FOREX_PROVIDER_BASE_URL")), "/"),
		DefaultCityCode:      strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_CITY_CODE"))),
		RateLimit:            strings.TrimSpace(v.GetString("RATE_LIMIT")),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:        strings.TrimSpace(v.GetString("POSTHOG_API_KEY")),
		PosthogEndpoint:      strings.TrimSpace(v.GetString("POSTHOG_ENDPOINT")),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL environment variable not set, leads will be stored in memory.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT environment variable not set.", slog.String("default", cfg.Port))
	}
	if cfg.ForexProviderBaseURL == "" {
		cfg.ForexProviderBaseURL = defaultForexProviderURL
	}
	if cfg.DefaultCityCode == "" {
		cfg.DefaultCityCode = defaultCityCode
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSAllowedOrigin}
	}
	if cfg.PosthogEndpoint == "" {
		cfg.PosthogEndpoint = defaultPosthogEndpoint
	}

	return cfg, nil
}

// getBool reads a boolean key, warning and defaulting to false on an invalid value.
func getBool(v *viper.Viper, key string) bool {
	raw := strings.TrimSpace(v.GetString(key))
	switch strings.ToLower(raw) {
	case "", "false", "0", "f", "no":
		return false
	case "true", "1", "t", "yes":
		return true
	default:
		slog.Warn("Invalid boolean value, defaulting to false.", slog.String("key", key), slog.String("value", raw))
		return false
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
