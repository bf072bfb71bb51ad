package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "/tmp/mentorlog-test.db")
	t.Setenv("MENTORLOG_EXPORT_DIR", "")
	t.Setenv("MENTORLOG_CATEGORIES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mentorlog-test.db", cfg.DatabaseURL)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Equal(t, DefaultCategories, cfg.Categories)
}

func TestLoad_CategoryOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", ":memory:")
	t.Setenv("MENTORLOG_CATEGORIES", "Workshop, Office Hours ,,Other")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Workshop", "Office Hours", "Other"}, cfg.Categories)
}

func TestValidCategory(t *testing.T) {
	cfg := &Config{Categories: []string{"Code Review", "Other"}}

	assert.True(t, cfg.ValidCategory("Code Review"))
	assert.False(t, cfg.ValidCategory("code review"), "matching is case-sensitive")
	assert.False(t, cfg.ValidCategory("Karaoke"))
}
