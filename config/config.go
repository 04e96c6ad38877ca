package config

import (
	"net/url"
	"os"
	"strconv"
	"time"

	"sjsage522/kijijiworker/pkg/errors"
)

// Fixed request profile for the Kijiji listing page. The site serves the
// embedded JSON payload for exactly this query, so none of it is
// environment-configurable.
const (
	// ListingKeyPrefix marks car-listing entries inside the embedded JSON tree
	ListingKeyPrefix = "AutosListing:"

	// FetchTimeout bounds the single outbound page request
	FetchTimeout = 30 * time.Second

	UserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	AcceptHeader = "text/html"

	SessionCookieName  = "kjses"
	SessionCookieValue = "a3ada55c-3dda-4d3b-a2f1-5a2dc3e6d11e"
)

// SearchQuery returns the fixed query-parameter set for the listing page
func SearchQuery() url.Values {
	return url.Values{
		"address":     {"Spanish, ON"},
		"for-sale-by": {"ownr"},
		"ll":          {"46.1947959,-82.3422779"},
		"price":       {"0__"},
		"radius":      {"988.0"},
		"view":        {"list"},
	}
}

// Config represents the application configuration
type Config struct {
	// HTTP server configuration
	ServerAddr string

	// Target page
	KijijiURL string

	// Redis configuration (publishing is disabled when RedisAddr is empty)
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Background scrape-and-publish interval
	ScrapeInterval time.Duration

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	scrapeInterval, _ := strconv.Atoi(getEnv("SCRAPE_INTERVAL_SECONDS", "300"))

	return Config{
		ServerAddr:           getEnv("SERVER_ADDR", ":8080"),
		KijijiURL:            getEnv("KIJIJI_URL", "https://www.kijiji.ca/b-cars-trucks/sudbury/c174l1700245"),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "kijijicars"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLength,
		ScrapeInterval:       time.Duration(scrapeInterval) * time.Second,
		Environment:          getEnv("KIJIJI_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return errors.NewConfiguration("server address must not be empty", nil)
	}
	if c.KijijiURL == "" {
		return errors.NewConfiguration("kijiji URL must not be empty", nil)
	}
	if _, err := url.ParseRequestURI(c.KijijiURL); err != nil {
		return errors.NewConfiguration("kijiji URL is not a valid URL", err)
	}
	if c.RedisAddr != "" {
		if c.RedisStreamCount < 1 {
			return errors.NewConfiguration("redis stream count must be at least 1", nil)
		}
		if c.RedisStreamMaxLength < 1 {
			return errors.NewConfiguration("redis stream max length must be at least 1", nil)
		}
		if c.ScrapeInterval <= 0 {
			return errors.NewConfiguration("scrape interval must be positive when publishing is enabled", nil)
		}
	}
	return nil
}

// PublishingEnabled reports whether the optional Redis publishing loop is on
func (c *Config) PublishingEnabled() bool {
	return c.RedisAddr != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
