package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// DataDir holds the object-store database and the job/reminder slots
	DataDir string
	// LLM proxy configuration
	GroqAPIKey  string
	GroqBaseURL string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
		DataDir:     getEnv("DATA_DIR", defaultDataDir()),
		GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		// Debug defaults to true outside production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// ObjectStorePath is the location of the folder/file database
func (c *Config) ObjectStorePath() string {
	return filepath.Join(c.DataDir, "documents.db")
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func defaultDataDir() string {
	return filepath.Join(".", "data")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
