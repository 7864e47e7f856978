package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "recommendations.db", cfg.DatabasePath)
	assert.Equal(t, "data/animes.csv", cfg.SourceCSVPath)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, int64(0), cfg.SampleSeed)
	assert.False(t, cfg.RatingsAfterImport)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("SOURCE_CSV_PATH", "/tmp/items.csv")
	t.Setenv("SAMPLE_SEED", "42")
	t.Setenv("SYNTHESIZE_RATINGS_AFTER_IMPORT", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	assert.Equal(t, "/tmp/items.csv", cfg.SourceCSVPath)
	assert.Equal(t, int64(42), cfg.SampleSeed)
	assert.True(t, cfg.RatingsAfterImport)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("SAMPLE_SEED", "not-a-number")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateCollectsViolations(t *testing.T) {
	cfg := &Config{
		DatabasePath:  "",
		SourceCSVPath: "x.csv",
		LogLevel:      "loud",
		LogFormat:     "text",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_PATH")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
