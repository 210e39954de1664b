// Package config provides centralized default values for the render service
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

// loadEnvFile loads environment variables from .env file
func loadEnvFile() {
	envLoaded.Do(func() {
		// .env file is optional, don't error if it doesn't exist
		_ = godotenv.Load()
	})
}

func init() {
	// Ensure .env is loaded before any config access
	loadEnvFile()
}

// getEnvInt reads environment variable with fallback to default
func getEnvInt(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvString reads environment variable with string fallback
func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// getEnvList reads a comma-separated environment variable
func getEnvList(key string, defaultValue []string) []string {
	if val := os.Getenv(key); val != "" {
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// Server Configuration
var (
	Port           = getEnvString("PORT", "8080")
	AllowedOrigins = getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
)

// Database Configuration
var (
	SQLitePath    = getEnvString("SQLITE_PATH", "./data/churchlink.db")
	TursoDatabase = getEnvString("TURSO_DATABASE_URL", "")
	TursoToken    = getEnvString("TURSO_AUTH_TOKEN", "")
)

// Content Configuration
var (
	MediaRoot        = getEnvString("MEDIA_ROOT", "./media")
	LocalesDir       = getEnvString("LOCALES_DIR", "./locales")
	DefaultLocale    = getEnvString("DEFAULT_LOCALE", "en")
	SupportedLocales = getEnvList("SUPPORTED_LOCALES", []string{"en", "ru"})
)

// Auth Configuration
var (
	JWTSecret = getEnvString("JWT_SECRET", "")
	AESKey    = getEnvString("AES_KEY", "")
	// BuilderSecretHash is the bcrypt hash of the builder secret; preview
	// tokens are only issued when the presented secret matches.
	BuilderSecretHash = getEnvString("BUILDER_SECRET_HASH", "")
)

// TTL Configuration
var (
	PageCacheTTL     = time.Duration(getEnvInt("PAGE_CACHE_TTL_HOURS", 24)) * time.Hour
	FragmentCacheTTL = time.Duration(getEnvInt("FRAGMENT_CACHE_TTL_HOURS", 1)) * time.Hour
	CleanupInterval  = time.Duration(getEnvInt("CACHE_CLEANUP_INTERVAL_MINUTES", 30)) * time.Minute
)
