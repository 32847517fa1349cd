package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidModel  = errors.New("model is required")
	ErrEmptyPrompt   = errors.New("prompt is empty")
	ErrEmptyResponse = errors.New("empty response from model")
)

// Client выполняет один запрос к модели и возвращает ответ.
// Повторов нет: любая ошибка сразу возвращается вызывающему.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
	// Close освобождает соединения транспорта.
	Close() error
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
}

// Response содержит текст ответа; счётчики токенов — метаданные провайдера.
type Response struct {
	Text             string
	Model            string
	PromptTokens     int
	CompletionTokens int
}

// StatusError возвращается, когда провайдер ответил не 2xx.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// UserMessage — сообщение пользователя для однократного промпта.
func UserMessage(content string) Message {
	return Message{Role: "user", Content: content}
}

func (r Request) validate() error {
	if r.Model == "" {
		return ErrInvalidModel
	}
	if len(r.Messages) == 0 {
		return ErrEmptyPrompt
	}
	return nil
}

const maxErrorBody = 200

func bodySnippet(body []byte) string {
	if len(body) <= maxErrorBody {
		return string(body)
	}
	return string(body[:maxErrorBody])
}
