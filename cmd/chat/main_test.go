package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdemo/internal/config"
	"promptdemo/internal/llmtest"
	"promptdemo/internal/prompt"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func remoteConfig(baseURL string) config.Config {
	return config.Config{
		OpenAI: config.OpenAIConfig{APIKey: "sk-test", BaseURL: baseURL + "/v1", Model: "gpt-4o-mini"},
	}
}

func TestRun(t *testing.T) {
	srv := llmtest.NewServer(t, "serenity")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), remoteConfig(srv.URL), discard, &out))

	chat := prompt.ColorChat()
	assert.Equal(t, "Input: '"+chat.User+"'\nOutput: 'serenity'\n", out.String())

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/v1/chat/completions", reqs[0].Path)
	assert.Equal(t, []llmtest.Message{
		{Role: "system", Content: chat.System},
		{Role: "user", Content: chat.User},
	}, reqs[0].Messages)
}

func TestRunProviderErrorPrintsNothing(t *testing.T) {
	srv := llmtest.NewServer(t, "serenity")
	srv.FailWith(http.StatusUnauthorized, "invalid api key")

	var out bytes.Buffer
	err := run(context.Background(), remoteConfig(srv.URL), discard, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Empty(t, out.String())
}
