package apiclient

import "time"

// DefaultBaseURL is used when no API_URL is configured.
const DefaultBaseURL = "http://localhost:5000/api/v1"

// Config holds the HTTP adapter settings.
type Config struct {
	BaseURL       string        `env:"API_URL" envDefault:"http://localhost:5000/api/v1"`
	Timeout       time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	RetryAttempts uint64        `env:"API_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"API_RETRY_INTERVAL" envDefault:"200ms"`
}
