package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myteai/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)

	assert.Empty(t, cfg.OpenAI.APIKey)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.InvoiceModel)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.ChatModel)
	assert.Equal(t, "whisper-1", cfg.OpenAI.TranscribeModel)
	assert.Equal(t, 120*time.Second, cfg.OpenAI.Timeout())

	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxFileBytes())
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5.0, cfg.RateLimit.PerSecond)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MYTEAI_SERVER_PORT", ":9090")
	t.Setenv("MYTEAI_OPENAI_API_KEY", "sk-test")
	t.Setenv("MYTEAI_OPENAI_INVOICE_MODEL", "gpt-4o")
	t.Setenv("MYTEAI_OPENAI_TIMEOUT_SECS", "30")
	t.Setenv("MYTEAI_UPLOAD_MAX_FILE_SIZE_MB", "2")
	t.Setenv("MYTEAI_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.InvoiceModel)
	assert.Equal(t, 30*time.Second, cfg.OpenAI.Timeout())
	assert.Equal(t, int64(2*1024*1024), cfg.Upload.MaxFileBytes())
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_BareOpenAIKeyFallback(t *testing.T) {
	t.Setenv("MYTEAI_OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-bare")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-bare", cfg.OpenAI.APIKey)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "3456")
	t.Setenv("MYTEAI_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":3456", cfg.Server.Port)
}
