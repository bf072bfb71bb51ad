package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultCategories is the session category allow-list used when
// MENTORLOG_CATEGORIES is not set. Edit the env var, not this list,
// to add a category on a deployed install.
var DefaultCategories = []string{
	"1:1 Mentoring",
	"Code Review",
	"Career Planning",
	"Pair Programming",
	"Other",
}

// Config holds process-wide settings consumed by the core. It is passed
// explicitly to the components that need it so tests can construct their own.
type Config struct {
	DatabaseURL string
	ExportDir   string
	Categories  []string
}

// Load reads configuration from the environment, honoring a .env file if one
// exists. DATABASE_URL is required: without a storage target the store cannot
// be initialized.
func Load() (*Config, error) {
	// Best effort; a missing .env file is not an error.
	_ = godotenv.Load()

	dbURL, ok := os.LookupEnv("DATABASE_URL")
	if !ok || dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	return &Config{
		DatabaseURL: dbURL,
		ExportDir:   getEnv("MENTORLOG_EXPORT_DIR", "exports"),
		Categories:  parseCategories(os.Getenv("MENTORLOG_CATEGORIES")),
	}, nil
}

// ValidCategory reports whether cat is in the configured allow-list.
func (c *Config) ValidCategory(cat string) bool {
	for _, known := range c.Categories {
		if known == cat {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// parseCategories splits a comma-separated override list, trimming whitespace
// and dropping empty entries. An empty or all-blank value falls back to the
// defaults.
func parseCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), DefaultCategories...)
	}
	var cats []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			cats = append(cats, part)
		}
	}
	if len(cats) == 0 {
		return append([]string(nil), DefaultCategories...)
	}
	return cats
}
