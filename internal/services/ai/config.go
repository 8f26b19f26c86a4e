// File: internal/services/ai/config.go
package ai

import "fmt"

type Config struct {
	// LLM Configuration
	APIKey  string
	BaseURL string
	Model   string

	// Model Parameters
	Temperature float32
	TopP        float32
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	if c.Model == "" {
		return fmt.Errorf("LLM_MODEL is required")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Model:       "gpt-4o-mini",
		Temperature: 0.1, // low for clinical extraction accuracy
		TopP:        0.9,
	}
}
