package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig collects the settings needed to run the content API.
type AppConfig struct {
	ListenAddr       string
	Port             string
	DatabaseDriver   string
	DatabasePath     string
	DatabaseURL      string
	DatabaseLogLevel string
	GinMode          string
	UploadDir        string
	UploadURLPath    string
	MaxUploadBytes   int64
	PageExcludeSlugs []string
}

// DefaultPageExcludeSlugs are hidden from the page listing unless the caller overrides them.
var DefaultPageExcludeSlugs = []string{"contact", "socialmedia"}

const defaultMaxUploadBytes = 10 << 20

// Load reads the application config from the environment, falling back to
// development defaults. A .env file in the working directory is honoured when present.
func Load() AppConfig {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	port := getEnv("PORT", "8080")

	listenAddr := getEnv("LISTEN_ADDR", "")
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	driver := strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite"))
	if driver != "postgres" {
		driver = "sqlite"
	}

	return AppConfig{
		ListenAddr:       listenAddr,
		Port:             port,
		DatabaseDriver:   driver,
		DatabasePath:     getEnv("DATABASE_PATH", "dancestudio.db"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DatabaseLogLevel: strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),
		GinMode:          getEnv("GIN_MODE", "release"),
		UploadDir:        getEnv("UPLOAD_DIR", "media"),
		UploadURLPath:    getEnv("UPLOAD_URL_PATH", "/media"),
		MaxUploadBytes:   getEnvBytes("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		PageExcludeSlugs: getEnvList("PAGE_EXCLUDE_SLUGS", DefaultPageExcludeSlugs),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return append([]string(nil), fallback...)
	}

	values := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.ToLower(strings.TrimSpace(part)); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func getEnvBytes(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	var size int64
	if _, err := fmt.Sscan(raw, &size); err != nil || size <= 0 {
		log.Printf("ignoring invalid %s=%q", key, raw)
		return fallback
	}
	return size
}
