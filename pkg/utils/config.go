package utils

import (
	"fmt"
	"maps"
	"strconv"
	"sync"
	"time"
)

// Configuration keys read by the connector, the runner and the CLI
const (
	KeyBaseURL            = "HIGHLEVEL_BASE_URL"
	KeyAPIVersion         = "HIGHLEVEL_API_VERSION"
	KeyLocationID         = "HIGHLEVEL_LOCATION_ID"
	KeyAccessToken        = "HIGHLEVEL_ACCESS_TOKEN"
	KeyClientID           = "HIGHLEVEL_CLIENT_ID"
	KeyClientSecret       = "HIGHLEVEL_CLIENT_SECRET"
	KeyRefreshToken       = "HIGHLEVEL_REFRESH_TOKEN"
	KeyTokenFile          = "HIGHLEVEL_TOKEN_FILE"
	KeyTimeoutSeconds     = "HIGHLEVEL_TIMEOUT_SECONDS"
	KeyAPIPort            = "API_PORT"
	KeyAPIKey             = "API_KEY"
	KeyCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
)

// Defaults applied when a key is absent
const (
	DefaultBaseURL        = "https://services.leadconnectorhq.com"
	DefaultAPIVersion     = "2021-04-15"
	DefaultTimeoutSeconds = 120
	DefaultAPIPort        = "8080"
)

// Config is a thread-safe key/value view over environment configuration
type Config struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewConfig creates a Config holding a copy of values
func NewConfig(values map[string]string) *Config {
	c := &Config{values: make(map[string]string, len(values))}
	maps.Copy(c.values, values)
	return c
}

// NewConfigFromEnv loads the given .env files and snapshots the environment
func NewConfigFromEnv(files ...string) *Config {
	return NewConfig(LoadEnv(files...))
}

// Get returns the value for key, or "" when unset
func (c *Config) Get(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key]
}

// GetWithDefault returns the value for key, or defaultValue when unset or empty
func (c *Config) GetWithDefault(key, defaultValue string) string {
	if value := c.Get(key); value != "" {
		return value
	}
	return defaultValue
}

// Require returns the value for key or an error naming the missing key
func (c *Config) Require(key string) (string, error) {
	value := c.Get(key)
	if value == "" {
		return "", fmt.Errorf("%s not set in environment", key)
	}
	return value, nil
}

// GetBool parses the value for key as a boolean. Unparseable values are false
func (c *Config) GetBool(key string) bool {
	value := c.Get(key)

	parsed, err := strconv.ParseBool(value)
	if err == nil {
		return parsed
	}

	switch value {
	case "yes", "on", "enabled":
		return true
	}
	return false
}

// GetIntWithDefault parses the value for key as an integer, falling back to
// defaultValue when unset or unparseable
func (c *Config) GetIntWithDefault(key string, defaultValue int) int {
	parsed, err := strconv.Atoi(c.Get(key))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// Timeout returns the HighLevel HTTP client timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.GetIntWithDefault(KeyTimeoutSeconds, DefaultTimeoutSeconds)) * time.Second
}

// Set modifies a configuration value
func (c *Config) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Has reports whether key is present, even if empty
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.values[key]
	return ok
}

// Clone creates an independent copy of the config
func (c *Config) Clone() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return NewConfig(c.values)
}
