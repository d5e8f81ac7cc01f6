package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application-level configuration
type Config struct {
	// Database (optional; empty disables persistence)
	DatabaseURL string

	// Dataset
	CSVFilePath       string
	CleanCSVPath      string // exported cleaned dataset; empty disables export
	OutlierPercentile float64

	// HTTP API
	ListenAddr string

	// LLM assistant
	OpenAIAPIKey  string
	OpenAIBaseURL string // override for OpenAI-compatible providers (e.g. OpenRouter)
	OpenAIModel   string
	MaxTokens     int
	Temperature   float64
	LLMRatePerSec float64
	LLMRateBurst  int

	// Recommendation engine
	TopResults int

	// Database connect retries
	MaxRetries int
}

// Load reads configuration from a .env file (if present) and environment
// variables, falling back to defaults
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		CSVFilePath:       getEnv("CSV_FILE_PATH", "data/Airbnb_Open_Data.csv"),
		CleanCSVPath:      getEnv("CLEAN_CSV_PATH", "output/clean_listings.csv"),
		OutlierPercentile: getEnvFloat("OUTLIER_PERCENTILE", 95),
		ListenAddr:        getEnv("LISTEN_ADDR", ":8080"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MaxTokens:         getEnvInt("LLM_MAX_TOKENS", 500),
		Temperature:       getEnvFloat("LLM_TEMPERATURE", 0.7),
		LLMRatePerSec:     getEnvFloat("LLM_RATE_PER_SEC", 3),
		LLMRateBurst:      getEnvInt("LLM_RATE_BURST", 5),
		TopResults:        getEnvInt("TOP_RESULTS", 3),
		MaxRetries:        getEnvInt("MAX_RETRIES", 3),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
