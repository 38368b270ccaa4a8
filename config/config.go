package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret        string
	DatabaseURL      string
	GeminiAPIKey     string
	GeminiModels     []string
	AIAttemptTimeout time.Duration
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// defaultGeminiModels is the ordered fallback list used when GEMINI_MODELS is
// not set. The first entry is tried first; later entries are fallbacks.
var defaultGeminiModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-flash-lite",
	"gemini-1.5-pro",
}

// Load populates AppConfig from environment variables.
func Load() {
	AppConfig.JWTSecret = os.Getenv("JWT_SECRET")
	AppConfig.DatabaseURL = os.Getenv("DATABASE_URL")
	AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	AppConfig.GeminiModels = defaultGeminiModels
	if models := os.Getenv("GEMINI_MODELS"); models != "" {
		var list []string
		for _, m := range strings.Split(models, ",") {
			if m = strings.TrimSpace(m); m != "" {
				list = append(list, m)
			}
		}
		if len(list) > 0 {
			AppConfig.GeminiModels = list
		}
	}

	AppConfig.AIAttemptTimeout = 30 * time.Second
	if secs := os.Getenv("AI_TIMEOUT_SECONDS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			AppConfig.AIAttemptTimeout = time.Duration(n) * time.Second
		}
	}
}
