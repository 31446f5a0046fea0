package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("POE_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("METADATA_TIMEOUT_SECONDS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.PoeBaseURL != "https://api.poe.com/v1" {
		t.Fatalf("PoeBaseURL = %q", cfg.PoeBaseURL)
	}
	if cfg.PoeModel != "Grok-Imagine-Image" {
		t.Fatalf("PoeModel = %q", cfg.PoeModel)
	}
	if cfg.MetadataTimeout != 10*time.Second {
		t.Fatalf("MetadataTimeout = %s, want 10s", cfg.MetadataTimeout)
	}
	if cfg.HasImageCredentials() {
		t.Fatalf("HasImageCredentials should be false without POE_API_KEY")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfigHonorsOverrides(t *testing.T) {
	t.Setenv("POE_API_KEY", "  secret  ")
	t.Setenv("IMAGE_TIMEOUT_SECONDS", "30")
	t.Setenv("OEMBED_FALLBACK_URL", "https://fallback.example.com/embed")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.PoeAPIKey != "secret" {
		t.Fatalf("PoeAPIKey = %q, want trimmed secret", cfg.PoeAPIKey)
	}
	if !cfg.HasImageCredentials() {
		t.Fatalf("HasImageCredentials should be true")
	}
	if cfg.ImageTimeout != 30*time.Second {
		t.Fatalf("ImageTimeout = %s, want 30s", cfg.ImageTimeout)
	}
	if cfg.OEmbedFallbackURL != "https://fallback.example.com/embed" {
		t.Fatalf("OEmbedFallbackURL = %q", cfg.OEmbedFallbackURL)
	}
	expected := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.CORSAllowedOrigins) != len(expected) {
		t.Fatalf("CORSAllowedOrigins = %#v, want %#v", cfg.CORSAllowedOrigins, expected)
	}
	for i, origin := range expected {
		if cfg.CORSAllowedOrigins[i] != origin {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], origin)
		}
	}
}

func TestLoadConfigInvalidIntegerFallsBack(t *testing.T) {
	t.Setenv("METADATA_TIMEOUT_SECONDS", "ten")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.MetadataTimeout != 10*time.Second {
		t.Fatalf("MetadataTimeout = %s, want default 10s", cfg.MetadataTimeout)
	}
}

func TestLoadConfigRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("IMAGE_TIMEOUT_SECONDS", "0")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for zero image timeout")
	}
}
