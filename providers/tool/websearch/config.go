package websearch

import (
	"os"
	"strconv"
	"time"
)

// Defaults applied by [DefaultConfig] and by [New] for zero-valued fields.
const (
	DefaultSearxNGURL       = "http://localhost:8888"
	DefaultTimeout          = 30 * time.Second
	DefaultMaxResults       = 10
	DefaultMaxContentLength = 50000
)

// Environment variables read by [ConfigFromEnv].
const (
	EnvSearxNGURL       = "SEARXNG_URL"
	EnvTimeoutSeconds   = "WEBSEARCH_TIMEOUT_SECONDS"
	EnvMaxResults       = "WEBSEARCH_MAX_RESULTS"
	EnvMaxContentLength = "WEBSEARCH_MAX_CONTENT_LENGTH"
)

// Config holds the process-wide settings of the tool. It is loaded once,
// never mutated during calls, and shared read-only between concurrent calls.
type Config struct {
	// SearxNGURL is the base URL of the SearXNG instance.
	SearxNGURL string

	// DefaultTimeout is the hard per-call ceiling for HTTP requests.
	DefaultTimeout time.Duration

	// MaxResults caps the number of search results when the caller does not
	// request a specific count.
	MaxResults int

	// MaxContentLength is the character budget for fetched page content.
	MaxContentLength int
}

// DefaultConfig returns the standard configuration: a local SearXNG instance,
// a 30 second timeout, 10 results, and a 50000 character content budget.
func DefaultConfig() Config {
	return Config{
		SearxNGURL:       DefaultSearxNGURL,
		DefaultTimeout:   DefaultTimeout,
		MaxResults:       DefaultMaxResults,
		MaxContentLength: DefaultMaxContentLength,
	}
}

// ConfigFromEnv builds a configuration from the environment, falling back to
// the defaults for unset or unparsable variables. Callers that want .env file
// support should import github.com/joho/godotenv/autoload.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvSearxNGURL); v != "" {
		cfg.SearxNGURL = v
	}
	if v, ok := envInt(EnvTimeoutSeconds); ok {
		cfg.DefaultTimeout = time.Duration(v) * time.Second
	}
	if v, ok := envInt(EnvMaxResults); ok {
		cfg.MaxResults = v
	}
	if v, ok := envInt(EnvMaxContentLength); ok {
		cfg.MaxContentLength = v
	}
	return cfg
}

func envInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// withDefaults fills zero-valued fields so a partially-populated Config is
// always usable.
func (c Config) withDefaults() Config {
	if c.SearxNGURL == "" {
		c.SearxNGURL = DefaultSearxNGURL
	}
	if c.DefaultTimeout <= 0 {
		c.DefaultTimeout = DefaultTimeout
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.MaxContentLength <= 0 {
		c.MaxContentLength = DefaultMaxContentLength
	}
	return c
}
