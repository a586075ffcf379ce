package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	OpenAI    OpenAIConfig
	Upload    UploadConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// OpenAIConfig holds credentials and model selection for the remote API.
type OpenAIConfig struct {
	APIKey          string `mapstructure:"api_key"`
	BaseURL         string `mapstructure:"base_url"`
	InvoiceModel    string `mapstructure:"invoice_model"`
	ChatModel       string `mapstructure:"chat_model"`
	TranscribeModel string `mapstructure:"transcribe_model"`
	TimeoutSecs     int    `mapstructure:"timeout_secs"`
}

// Timeout returns the bounded per-call timeout for remote model requests.
func (o *OpenAIConfig) Timeout() time.Duration {
	if o.TimeoutSecs <= 0 {
		return 120 * time.Second
	}
	return time.Duration(o.TimeoutSecs) * time.Second
}

// UploadConfig holds upload validation settings.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileBytes returns the upload size cap in bytes.
func (u *UploadConfig) MaxFileBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig holds per-client rate limiting settings.
type RateLimitConfig struct {
	PerSecond float64 `mapstructure:"per_second"`
	Burst     int     `mapstructure:"burst"`
}

// Load reads configuration from environment variables with the MYTEAI_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MYTEAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "300s")
	v.SetDefault("server.environment", "development")

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.invoice_model", "gpt-4o-mini")
	v.SetDefault("openai.chat_model", "gpt-4o")
	v.SetDefault("openai.transcribe_model", "whisper-1")
	v.SetDefault("openai.timeout_secs", 120)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Rate limit defaults
	v.SetDefault("rate_limit.per_second", 5)
	v.SetDefault("rate_limit.burst", 10)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "MYTEAI_SERVER_PORT",
		"server.read_timeout":     "MYTEAI_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "MYTEAI_SERVER_WRITE_TIMEOUT",
		"server.environment":      "MYTEAI_SERVER_ENVIRONMENT",
		"openai.api_key":          "MYTEAI_OPENAI_API_KEY",
		"openai.base_url":         "MYTEAI_OPENAI_BASE_URL",
		"openai.invoice_model":    "MYTEAI_OPENAI_INVOICE_MODEL",
		"openai.chat_model":       "MYTEAI_OPENAI_CHAT_MODEL",
		"openai.transcribe_model": "MYTEAI_OPENAI_TRANSCRIBE_MODEL",
		"openai.timeout_secs":     "MYTEAI_OPENAI_TIMEOUT_SECS",
		"upload.max_file_size_mb": "MYTEAI_UPLOAD_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":    "MYTEAI_CORS_ALLOWED_ORIGINS",
		"rate_limit.per_second":   "MYTEAI_RATE_LIMIT_PER_SECOND",
		"rate_limit.burst":        "MYTEAI_RATE_LIMIT_BURST",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MYTEAI_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MYTEAI_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	// The bare OPENAI_API_KEY variable is honored so deployments keyed to
	// the common convention keep working.
	apiKey := v.GetString("openai.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.OpenAI = OpenAIConfig{
		APIKey:          apiKey,
		BaseURL:         v.GetString("openai.base_url"),
		InvoiceModel:    v.GetString("openai.invoice_model"),
		ChatModel:       v.GetString("openai.chat_model"),
		TranscribeModel: v.GetString("openai.transcribe_model"),
		TimeoutSecs:     v.GetInt("openai.timeout_secs"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.RateLimit = RateLimitConfig{
		PerSecond: v.GetFloat64("rate_limit.per_second"),
		Burst:     v.GetInt("rate_limit.burst"),
	}

	return cfg, nil
}
