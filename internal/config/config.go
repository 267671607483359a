package config

import (
	"os"
)

type Config struct {
	Port            string
	ProjectID       string
	GeminiAPIKey    string
	GeminiModel     string
	WordsCollection string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		ProjectID:       getEnv("GCP_PROJECT", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		WordsCollection: getEnv("WORDS_COLLECTION", "words"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
