package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Rev.ai speech-to-text (optional; the transcription endpoint reports a
	// configuration error when the key is absent)
	RevAIAPIKey string

	// Uploads
	MaxUploadBytes      int64
	MaxVideoUploadBytes int64
	TempDir             string

	// Frontend
	FrontendURL string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                getEnvOrDefault("PORT", "8080"),
		Env:                 getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-pro"),
		RevAIAPIKey:         os.Getenv("REV_AI_API_KEY"),
		MaxUploadBytes:      int64(getEnvAsIntOrDefault("MAX_UPLOAD_MB", 100)) * 1024 * 1024,
		MaxVideoUploadBytes: int64(getEnvAsIntOrDefault("MAX_VIDEO_UPLOAD_MB", 50)) * 1024 * 1024,
		TempDir:             getEnvOrDefault("UPLOAD_TEMP_DIR", os.TempDir()),
		FrontendURL:         getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("required environment variable GEMINI_API_KEY is not set")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
