package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
}

// ChatCompleter — часть клиента go-openai, от которой зависит OpenAIClient.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient отправляет chat completions через SDK go-openai.
type OpenAIClient struct {
	api        ChatCompleter
	httpClient *http.Client
	logger     *slog.Logger
}

func NewOpenAIClient(cfg OpenAIConfig, httpClient *http.Client, logger *slog.Logger) *OpenAIClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		oc.HTTPClient = httpClient
	}
	return &OpenAIClient{
		api:        openai.NewClientWithConfig(oc),
		httpClient: httpClient,
		logger:     logger,
	}
}

// NewOpenAIClientWithAPI оборачивает готовый completer, например тестовый.
func NewOpenAIClientWithAPI(api ChatCompleter, logger *slog.Logger) *OpenAIClient {
	return &OpenAIClient{api: api, logger: logger}
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (Response, error) {
	if err := req.validate(); err != nil {
		return Response{}, err
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: sdkTemperature(req.Temperature),
	})
	if err != nil {
		return Response{}, mapSDKError(err)
	}

	if c.logger != nil {
		c.logger.Debug("chat completion",
			slog.String("id", resp.ID),
			slog.String("model", resp.Model),
			slog.Int("prompt_tokens", resp.Usage.PromptTokens),
			slog.Int("completion_tokens", resp.Usage.CompletionTokens),
			slog.Duration("duration", time.Since(start)))
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return Response{}, ErrEmptyResponse
	}

	model := resp.Model
	if model == "" {
		model = req.Model
	}
	return Response{
		Text:             resp.Choices[0].Message.Content,
		Model:            model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

func (c *OpenAIClient) Close() error {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}

// sdkTemperature заменяет 0 на наименьший положительный float32: SDK не передаёт
// нулевую температуру, и сервер подставил бы своё значение по умолчанию.
func sdkTemperature(t float64) float32 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}

func mapSDKError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &StatusError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &StatusError{StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Error()}
	}
	return fmt.Errorf("execute request: %w", err)
}
