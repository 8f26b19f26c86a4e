// File: internal/services/provider/config.go
package provider

import "fmt"

type Config struct {
	// DefaultStateCode is queried when neither a postal code nor device
	// coordinates are available.
	DefaultStateCode string

	// Fixed zoom span applied around the viewport center.
	LatitudeSpan  float64
	LongitudeSpan float64

	// Limit caps how many directory records one discovery query pulls.
	Limit int
}

func (c *Config) Validate() error {
	if c.DefaultStateCode == "" {
		return fmt.Errorf("default state code is required")
	}
	if c.LatitudeSpan <= 0 || c.LongitudeSpan <= 0 {
		return fmt.Errorf("viewport spans must be positive")
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		DefaultStateCode: "IL",
		LatitudeSpan:     0.08,
		LongitudeSpan:    0.08,
		Limit:            20,
	}
}
