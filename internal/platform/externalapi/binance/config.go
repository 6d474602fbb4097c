// Package binance provides a client for the Binance public market metadata API.
package binance

import (
	"os"
	"time"
)

// DefaultBaseURL is the Binance spot REST endpoint.
const DefaultBaseURL = "https://api.binance.com"

// Config holds configuration for the Binance API client.
type Config struct {
	APIKey    string        // API key (optional, exchangeInfo is public)
	SecretKey string        // Secret key (optional)
	BaseURL   string        // Base URL for the API (e.g., "https://api.binance.com")
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads Binance configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("BINANCE_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		APIKey:    os.Getenv("BINANCE_API_KEY"),
		SecretKey: os.Getenv("BINANCE_SECRET_KEY"),
		BaseURL:   baseURL,
		Timeout:   10 * time.Second,
	}
}
