package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Ollama.APIKey)
	assert.False(t, cfg.Ollama.Configured())
	assert.Equal(t, "https://ollama.com/api", cfg.Ollama.APIURL)
	assert.Equal(t, "glm-4.6", cfg.Ollama.Model)
	assert.Equal(t, 60*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, 0.4, cfg.Ollama.Temperature)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("OLLAMA_API_KEY", "secret")
	t.Setenv("OLLAMA_API_URL", "http://localhost:11434/api")
	t.Setenv("OLLAMA_MODEL", "llama3.2")
	t.Setenv("OLLAMA_TIMEOUT", "15s")
	t.Setenv("OLLAMA_TEMPERATURE", "0.7")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.True(t, cfg.Ollama.Configured())
	assert.Equal(t, "secret", cfg.Ollama.APIKey)
	assert.Equal(t, "http://localhost:11434/api", cfg.Ollama.APIURL)
	assert.Equal(t, "llama3.2", cfg.Ollama.Model)
	assert.Equal(t, 15*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, 0.7, cfg.Ollama.Temperature)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidTimeoutFallsBackToDefault(t *testing.T) {
	t.Setenv("OLLAMA_TIMEOUT", "0s")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.Ollama.Timeout)
}
