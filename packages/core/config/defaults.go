package config

import "time"

const (
	// DefaultTimeout bounds connecting, sending and reading the response
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRedirects is the hop cap applied when -L is given
	DefaultMaxRedirects = 10
)

// Config holds the transport settings hitcurl runs with. They are not read
// from files or the environment.
type Config struct {
	Timeout      time.Duration
	MaxRedirects int
	UserAgent    string
}

// DefaultConfig returns a configuration with default values
func DefaultConfig(version string) *Config {
	return &Config{
		Timeout:      DefaultTimeout,
		MaxRedirects: DefaultMaxRedirects,
		UserAgent:    "hitcurl/" + version,
	}
}
