package config

import "time"

// APIConfig holds catalog API client configuration
type APIConfig struct {
	// Base URL for the reference data API
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Rate limiting settings
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Request timeout
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`

	// Retry configuration
	Retry RetryConfig `mapstructure:"retry"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}

// RetryConfig holds retry configuration for failed requests
type RetryConfig struct {
	// Maximum number of retry attempts
	MaxAttempts int `mapstructure:"max_attempts" validate:"min=0"`

	// Base duration for exponential backoff
	BackoffBase time.Duration `mapstructure:"backoff_base"`
}

// CatalogConfig controls the local catalog cache
type CatalogConfig struct {
	// How long cached agent/map catalogs stay fresh before a refetch.
	// Stale entries are still used as a fallback when the API is down.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// Skip the API entirely and serve from cache (offline mode)
	Offline bool `mapstructure:"offline"`
}
