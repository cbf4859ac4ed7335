package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "MONGO_DB", "MINIO_BUCKET", "OPENAI_MODEL",
		"GENERATE_TIMEOUT", "REPORT_CACHE_TTL", "RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "research_assistant", cfg.MongoDB)
	require.Equal(t, "research-exports", cfg.MinioBucket)
	require.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	require.Equal(t, 45*time.Second, cfg.GenerateTimeout)
	require.Equal(t, time.Hour, cfg.CacheTTL)
	require.Equal(t, 30, cfg.RequestsPerMinute)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("GENERATE_TIMEOUT", "10s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()
	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, 10*time.Second, cfg.GenerateTimeout)
	require.Equal(t, 5, cfg.RequestsPerMinute)
	require.True(t, cfg.MinioUseSSL)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("GENERATE_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")

	cfg := Load()
	require.Equal(t, 45*time.Second, cfg.GenerateTimeout)
	require.Equal(t, 30, cfg.RequestsPerMinute)
}
