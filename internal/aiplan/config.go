package aiplan

import "time"

// Config holds plan generation settings for the AI path.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds a single generation attempt (the provider's retry
	// budget lives inside it).
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for plan generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
		Timeout:     60 * time.Second,
	}
}
