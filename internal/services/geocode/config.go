// File: internal/services/geocode/config.go
package geocode

import (
	"fmt"
	"time"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("GEOCODER_BASE_URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL: "https://nominatim.openstreetmap.org",
		Timeout: 10 * time.Second,
	}
}
