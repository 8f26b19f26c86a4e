// File: internal/services/summary/config.go
package summary

import (
	"fmt"
	"time"
)

type Config struct {
	// Model used for summary generation requests.
	Model string

	// DebounceInterval is the quiet period required after a qualifying
	// message append before generation fires.
	DebounceInterval time.Duration

	// TrailingWindow is how many of the most recent messages are checked
	// for user activity; a user message inside it defers generation.
	TrailingWindow int

	// MinContentLength is the minimum concatenated assistant text length
	// worth summarizing; below it no request is issued.
	MinContentLength int
}

func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.DebounceInterval <= 0 {
		return fmt.Errorf("debounce_interval must be positive")
	}
	if c.TrailingWindow <= 0 {
		return fmt.Errorf("trailing_window must be positive")
	}
	if c.MinContentLength < 0 {
		return fmt.Errorf("min_content_length cannot be negative")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Model:            "gpt-4o-mini",
		DebounceInterval: 5 * time.Second,
		TrailingWindow:   5,
		MinContentLength: 50,
	}
}
