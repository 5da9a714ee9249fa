package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("OMDB_API_KEY", "")
	t.Setenv("OMDB_BASE_URL", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.OMDbAPIKey)
	assert.Equal(t, "https://www.omdbapi.com/", cfg.OMDbBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 8, cfg.DetailConcurrency)
	assert.NotEmpty(t, cfg.Hostname)
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("OMDB_API_KEY", "real-key")
	t.Setenv("OMDB_BASE_URL", "http://localhost:9999/")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "real-key", cfg.OMDbAPIKey)
	assert.Equal(t, "http://localhost:9999/", cfg.OMDbBaseURL)
}

func TestProductionRequiresAPIKey(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("OMDB_API_KEY", "")

	_, err := New()
	require.Error(t, err)
}
