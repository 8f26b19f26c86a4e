// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	// Generative text service
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	// Geocoding service (forward + reverse)
	GeocoderBaseURL string

	// Provider directory service
	DirectoryBaseURL string
	// Fallback region queried when neither a postal code nor device
	// coordinates are available.
	DefaultStateCode string

	DatabasePath string
}

// Load reads configuration from environment variables or a .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      env,
		LLMAPIKey:        getEnv("LLM_API_KEY", ""),
		LLMBaseURL:       getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:         getEnv("LLM_MODEL", "gpt-4o-mini"),
		GeocoderBaseURL:  getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		DirectoryBaseURL: getEnv("DIRECTORY_BASE_URL", "https://npiregistry.cms.hhs.gov/api"),
		DefaultStateCode: getEnv("DEFAULT_STATE_CODE", "IL"),
		DatabasePath:     getEnv("DATABASE_PATH", "medassist.db"),
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.LLMAPIKey == "" {
			missing = append(missing, "LLM_API_KEY")
		}
		if cfg.GeocoderBaseURL == "" {
			missing = append(missing, "GEOCODER_BASE_URL")
		}
		if cfg.DirectoryBaseURL == "" {
			missing = append(missing, "DIRECTORY_BASE_URL")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
