package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration values, loaded once at startup.
type Config struct {
	AppBaseURL         string
	FrontendURL        string
	CORSOrigins        []string
	AccessTokenSecret  string
	RefreshTokenSecret string
	EmailVerifySecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	CookieSecure       bool
	GoogleClientID     string
	GoogleClientSecret string
	GeoServiceURL      string
}

// NewConfig loads configuration from environment variables. It fails when
// either JWT signing secret is unset: the process must not serve traffic
// without them.
func NewConfig() (*Config, error) {
	accessSecret := os.Getenv("JWT_ACCESS_SECRET")
	refreshSecret := os.Getenv("JWT_REFRESH_SECRET")
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("JWT secrets are not configured")
	}

	return &Config{
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		CORSOrigins:        strings.Split(getEnv("CORS_ORIGIN", "http://localhost:5173"), ","),
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		EmailVerifySecret:  getEnv("EMAIL_VERIFY_SECRET", ""),
		AccessTokenExpiry:  time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 15)),
		RefreshTokenExpiry: time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)), // 7 days
		CookieSecure:       getEnvAsBool("COOKIE_SECURE", false),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GeoServiceURL:      getEnv("GEO_URL", "https://geocoding-api.open-meteo.com/v1/search"),
	}, nil
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetFrontendURL returns the frontend base URL for OAuth redirects.
func (c *Config) GetFrontendURL() string {
	return c.FrontendURL
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

// GetCookieSecure reports whether session cookies carry the Secure and
// cross-site attributes.
func (c *Config) GetCookieSecure() bool {
	return c.CookieSecure
}

// GetGeoServiceURL returns the geocoding endpoint for location info lookups.
func (c *Config) GetGeoServiceURL() string {
	return c.GeoServiceURL
}

// GetCORSOrigins returns the allowed CORS origins.
func (c *Config) GetCORSOrigins() []string {
	return c.CORSOrigins
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
