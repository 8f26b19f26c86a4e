// File: internal/services/directory/config.go
package directory

import (
	"fmt"
	"time"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// Limit caps how many records one search returns.
	Limit int
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("DIRECTORY_BASE_URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Limit <= 0 || c.Limit > 200 {
		return fmt.Errorf("limit must be between 1 and 200")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL: "https://npiregistry.cms.hhs.gov/api",
		Timeout: 15 * time.Second,
		Limit:   20,
	}
}
