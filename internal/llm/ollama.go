package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultOllamaBaseURL — адрес локального сервера Ollama по умолчанию.
const DefaultOllamaBaseURL = "http://localhost:11434"

// OllamaClient использует /api/chat Ollama с выключенным стримингом.
type OllamaClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewOllamaClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *OllamaClient {
	u := strings.TrimRight(baseURL, "/")
	if u == "" {
		u = DefaultOllamaBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OllamaClient{baseURL: u, httpClient: httpClient, logger: logger}
}

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []Message     `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatResponse struct {
	Model           string  `json:"model"`
	Message         Message `json:"message"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
}

func (c *OllamaClient) Complete(ctx context.Context, req Request) (Response, error) {
	if err := req.validate(); err != nil {
		return Response{}, err
	}

	body, err := json.Marshal(ollamaChatRequest{
		Model:    req.Model,
		Messages: req.Messages,
		Stream:   false,
		Options:  ollamaOptions{Temperature: req.Temperature},
	})
	if err != nil {
		return Response{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Response{}, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var out ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("ollama: decode response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("ollama chat",
			slog.String("model", req.Model),
			slog.Int("eval_count", out.EvalCount),
			slog.Duration("duration", time.Since(start)))
	}

	if out.Message.Content == "" {
		return Response{}, ErrEmptyResponse
	}

	model := out.Model
	if model == "" {
		model = req.Model
	}
	return Response{
		Text:             out.Message.Content,
		Model:            model,
		PromptTokens:     out.PromptEvalCount,
		CompletionTokens: out.EvalCount,
	}, nil
}

func (c *OllamaClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
