package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	N8NBaseURL       string
	N8NAPIKey        string
	N8NWebhookURL    string
	N8NWebhookPath   string
	FormTargetURL    string
	FormProxyURL     string
	FormSharedSecret string
	FormEncoding     string
	ForwardTimeout   time.Duration
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. Every setting is a plain override; nothing here is
// required at startup. The legacy webhook path reports its missing target at
// request time instead.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "3000"),
		N8NBaseURL:       strings.TrimRight(getEnv("N8N_BASE_URL", "http://localhost:5678"), "/"),
		N8NAPIKey:        os.Getenv("N8N_API_KEY"),
		N8NWebhookURL:    os.Getenv("N8N_WEBHOOK_URL"),
		N8NWebhookPath:   os.Getenv("N8N_WEBHOOK_PATH"),
		FormTargetURL:    os.Getenv("FORM_TARGET_URL"),
		FormProxyURL:     os.Getenv("FORM_PROXY_URL"),
		FormSharedSecret: os.Getenv("FORM_SHARED_SECRET"),
		FormEncoding:     getEnv("FORM_ENCODING", "json"),
		ForwardTimeout:   time.Second * time.Duration(getEnvInt("FORWARD_TIMEOUT_SECONDS", 15)),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}
	return cfg, nil
}

// WebhookURL resolves the legacy webhook target from either the full URL or
// the base+path pair. Empty means the path is unconfigured.
func (c *Config) WebhookURL() string {
	if c.N8NWebhookURL != "" {
		return c.N8NWebhookURL
	}
	if c.N8NWebhookPath != "" {
		return c.N8NBaseURL + "/" + strings.TrimLeft(c.N8NWebhookPath, "/")
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
