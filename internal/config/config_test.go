package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "https://api.openai.com/v1")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "0s")
	t.Setenv("LOCAL_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Empty(t, cfg.Ollama.Model)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "30s")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OLLAMA_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("LOCAL_MODEL", "llama3")
	t.Setenv("FEWSHOT_EXAMPLES_FILE", "examples.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Ollama.BaseURL)
	assert.Equal(t, "llama3", cfg.Ollama.Model)
	assert.Equal(t, "examples.yaml", cfg.ExamplesFile)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	for _, value := range []string{"", "soon", "-1s"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("HTTP_CLIENT_TIMEOUT", value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "HTTP_CLIENT_TIMEOUT")
		})
	}
}

func TestRemoteRequiresAPIKey(t *testing.T) {
	cfg := Config{OpenAI: OpenAIConfig{BaseURL: "https://api.openai.com/v1", Model: "gpt-4o-mini"}}

	_, err := cfg.Remote()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIKey")

	cfg.OpenAI.APIKey = "sk-test"
	remote, err := cfg.Remote()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", remote.APIKey)
}

func TestRemoteRejectsBadBaseURL(t *testing.T) {
	cfg := Config{OpenAI: OpenAIConfig{APIKey: "sk-test", BaseURL: "not a url", Model: "gpt-4o-mini"}}

	_, err := cfg.Remote()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BaseURL")
}

func TestLocalRequiresModel(t *testing.T) {
	cfg := Config{Ollama: OllamaConfig{BaseURL: "http://localhost:11434"}}

	_, err := cfg.Local()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Model")

	cfg.Ollama.Model = "llama3"
	local, err := cfg.Local()
	require.NoError(t, err)
	assert.Equal(t, "llama3", local.Model)
}
