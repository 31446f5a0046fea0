package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	PoeAPIKey          string
	PoeBaseURL         string
	PoeModel           string
	OEmbedPrimaryURL   string
	OEmbedFallbackURL  string
	MetadataTimeout    time.Duration
	ImageTimeout       time.Duration
	MaxRequestBytes    int64
	CORSAllowedOrigins []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
// The image provider credential is optional here; its absence surfaces per request.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		PoeAPIKey:          strings.TrimSpace(os.Getenv("POE_API_KEY")),
		PoeBaseURL:         getEnv("POE_BASE_URL", "https://api.poe.com/v1"),
		PoeModel:           getEnv("POE_MODEL", "Grok-Imagine-Image"),
		OEmbedPrimaryURL:   getEnv("OEMBED_PRIMARY_URL", "https://www.youtube.com/oembed"),
		OEmbedFallbackURL:  getEnv("OEMBED_FALLBACK_URL", "https://noembed.com/embed"),
		MetadataTimeout:    time.Second * time.Duration(getEnvInt("METADATA_TIMEOUT_SECONDS", 10)),
		ImageTimeout:       time.Second * time.Duration(getEnvInt("IMAGE_TIMEOUT_SECONDS", 120)),
		MaxRequestBytes:    int64(getEnvInt("MAX_REQUEST_BYTES", 12<<20)),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 150)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if cfg.MetadataTimeout <= 0 {
		return nil, fmt.Errorf("METADATA_TIMEOUT_SECONDS must be positive")
	}
	if cfg.ImageTimeout <= 0 {
		return nil, fmt.Errorf("IMAGE_TIMEOUT_SECONDS must be positive")
	}
	if cfg.HTTPReadTimeout <= 0 || cfg.HTTPWriteTimeout <= 0 || cfg.HTTPIdleTimeout <= 0 {
		return nil, fmt.Errorf("HTTP server timeouts must be positive")
	}
	if cfg.MaxRequestBytes <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BYTES must be positive")
	}

	return cfg, nil
}

// HasImageCredentials reports whether the image provider key is configured.
func (c *Config) HasImageCredentials() bool {
	return c != nil && c.PoeAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
