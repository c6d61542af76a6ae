package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/reconanalytics/docgen/internal/markdown"
)

type Config struct {
	Port string

	// Auth. Empty disables the API key check.
	APIKey string

	// Output
	OutputDir string
	BaseURL   string

	// Upload limits
	MaxRequestBytes int64

	// Retention
	RetentionMaxAge   time.Duration
	RetentionInterval time.Duration

	// Branding
	LogoPath string
	LogoDocx string
	SiteURL  string

	// Section policy
	PolicyFile string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		APIKey: os.Getenv("DOCGEN_API_KEY"),

		OutputDir: envOr("OUTPUT_DIR", "generated_docs"),
		BaseURL:   envOr("BASE_URL", ""),

		MaxRequestBytes: envInt64("MAX_REQUEST_BYTES", 10485760), // 10MB

		RetentionMaxAge:   envDuration("RETENTION_MAX_AGE", 24*time.Hour),
		RetentionInterval: envDuration("RETENTION_INTERVAL", 1*time.Hour),

		LogoPath: os.Getenv("LOGO_PATH"),
		LogoDocx: os.Getenv("LOGO_DOCX"),
		SiteURL:  envOr("SITE_URL", ""),

		PolicyFile: os.Getenv("POLICY_FILE"),
	}

	if cfg.MaxRequestBytes <= 0 {
		cfg.MaxRequestBytes = 10485760
	}
	if cfg.RetentionMaxAge <= 0 {
		cfg.RetentionMaxAge = 24 * time.Hour
	}
	if cfg.RetentionInterval <= 0 {
		cfg.RetentionInterval = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}

// LoadPolicy reads the section policy file, or returns the built-in defaults
// when no file is configured.
func LoadPolicy(path string) (markdown.Policy, error) {
	if path == "" {
		return markdown.DefaultPolicy(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return markdown.Policy{}, fmt.Errorf("read policy file: %w", err)
	}
	var pol markdown.Policy
	if err := yaml.Unmarshal(data, &pol); err != nil {
		return markdown.Policy{}, fmt.Errorf("parse policy file: %w", err)
	}
	def := markdown.DefaultPolicy()
	if pol.ProseSections == nil {
		pol.ProseSections = def.ProseSections
	}
	if pol.HighlightSections == nil {
		pol.HighlightSections = def.HighlightSections
	}
	return pol, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
