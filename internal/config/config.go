package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Search  SearchConfig
	Answer  AnswerConfig
	Logging LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// DatasetConfig holds dataset configuration
type DatasetConfig struct {
	Path string
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	DefaultLimit    int
	MaxLimit        int
	RoommateMaxRows int
	SummaryTopK     int
}

// AnswerConfig holds LLM answer generation configuration
type AnswerConfig struct {
	Provider    string // "openai", "ollama" or empty for fallback only
	Model       string
	APIKey      string
	BaseURL     string
	Style       string
	Length      string
	Temperature float64
	Timeout     time.Duration
	Enabled     bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Dataset: DatasetConfig{
			Path: getEnv("DATASET_PATH", "mieszkania.csv"),
		},
		Search: SearchConfig{
			DefaultLimit:    getEnvAsInt("SEARCH_DEFAULT_LIMIT", 50),
			MaxLimit:        getEnvAsInt("SEARCH_MAX_LIMIT", 200),
			RoommateMaxRows: getEnvAsInt("SEARCH_ROOMMATE_MAX_ROWS", 20),
			SummaryTopK:     getEnvAsInt("SEARCH_SUMMARY_TOP_K", 3),
		},
		Answer: AnswerConfig{
			Provider:    getEnv("LLM_PROVIDER", ""),
			Model:       getEnv("LLM_MODEL", defaultModel(getEnv("LLM_PROVIDER", ""))),
			APIKey:      getEnv("LLM_API_KEY", ""),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
			Style:       getEnv("ANSWER_STYLE", "zwięzły"),
			Length:      getEnv("ANSWER_LENGTH", "krótka"),
			Temperature: getEnvAsFloat("LLM_TEMPERATURE", 0.3),
			Timeout:     time.Duration(getEnvAsInt("LLM_TIMEOUT_SECONDS", 10)) * time.Second,
			Enabled:     getEnv("LLM_PROVIDER", "") != "",
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

func defaultModel(provider string) string {
	switch provider {
	case "ollama":
		return "llama3"
	default:
		return "gpt-4o-mini"
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
