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

	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

type ChatCompletionsConfig struct {
	APIKey  string
	BaseURL string
}

// ChatCompletionsClient работает с любым OpenAI-совместимым /chat/completions.
type ChatCompletionsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewChatCompletionsClient(cfg ChatCompletionsConfig, httpClient *http.Client, logger *slog.Logger) *ChatCompletionsClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ChatCompletionsClient{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *ChatCompletionsClient) Complete(ctx context.Context, req Request) (Response, error) {
	if err := req.validate(); err != nil {
		return Response{}, err
	}

	temperature := req.Temperature
	buf, err := json.Marshal(chatCompletionsRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: &temperature,
	})
	if err != nil {
		return Response{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(buf))
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerRequestID, requestID)
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("chat completion",
			slog.String("request_id", requestID),
			slog.String("model", req.Model),
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", time.Since(start)))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &StatusError{StatusCode: resp.StatusCode, Body: bodySnippet(bodyBytes)}
	}

	var parsed chatCompletionsResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return Response{}, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return Response{}, ErrEmptyResponse
	}

	model := parsed.Model
	if model == "" {
		model = req.Model
	}
	return Response{
		Text:             parsed.Choices[0].Message.Content,
		Model:            model,
		PromptTokens:     parsed.Usage.PromptTokens,
		CompletionTokens: parsed.Usage.CompletionTokens,
	}, nil
}

func (c *ChatCompletionsClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
}

type chatCompletionsResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}
