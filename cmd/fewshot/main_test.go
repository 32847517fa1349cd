package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdemo/internal/config"
	"promptdemo/internal/llmtest"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func remoteConfig(baseURL string) config.Config {
	return config.Config{
		OpenAI: config.OpenAIConfig{APIKey: "sk-test", BaseURL: baseURL, Model: "gpt-4o-mini"},
	}
}

func TestRun(t *testing.T) {
	srv := llmtest.NewServer(t, "serenity")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), remoteConfig(srv.URL), discard, &out))

	assert.True(t, strings.HasPrefix(out.String(), "Input: 'Color: purple'\nOutput: 'Emotion: serenity'\n\nPrompt:\n\n"))
	assert.True(t, strings.HasSuffix(out.String(), "Color: purple\nEmotion:\n"))

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "gpt-4o-mini", reqs[0].Model)
	assert.Contains(t, reqs[0].Messages[0].Content, "Color: blue\nEmotion: serenity")
}

func TestRunWithExamplesFile(t *testing.T) {
	srv := llmtest.NewServer(t, "mystery")

	path := filepath.Join(t.TempDir(), "examples.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- input: black\n  output: grief\n"), 0o600))

	cfg := remoteConfig(srv.URL)
	cfg.ExamplesFile = path

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, discard, &out))

	sent := srv.Requests()[0].Messages[0].Content
	assert.Contains(t, sent, "Color: black\nEmotion: grief")
	assert.NotContains(t, sent, "passion")
}

func TestRunFailsWithoutAPIKey(t *testing.T) {
	srv := llmtest.NewServer(t, "serenity")
	cfg := remoteConfig(srv.URL)
	cfg.OpenAI.APIKey = ""

	var out bytes.Buffer
	require.Error(t, run(context.Background(), cfg, discard, &out))
	assert.Empty(t, out.String())
	assert.Empty(t, srv.Requests())
}

func TestRunProviderErrorPrintsNothing(t *testing.T) {
	srv := llmtest.NewServer(t, "serenity")
	srv.FailWith(http.StatusInternalServerError, "boom")

	var out bytes.Buffer
	require.Error(t, run(context.Background(), remoteConfig(srv.URL), discard, &out))
	assert.Empty(t, out.String())
}
