// Package demo связывает промпт, один вызов модели и печать результата.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"promptdemo/internal/llm"
	"promptdemo/internal/output"
	"promptdemo/internal/prompt"
)

// Temperature — температура сэмплирования во всех демо.
const Temperature = 0.0

type Runner struct {
	Client      llm.Client
	Model       string
	Temperature float64
	Printer     *output.Printer
	Logger      *slog.Logger
}

// RunFewShot рендерит fs для query, один раз вызывает модель и печатает ответ
// вместе с промптом. При любой ошибке ничего не печатается.
func (r *Runner) RunFewShot(ctx context.Context, fs prompt.FewShot, query string) error {
	text, err := fs.Format(query)
	if err != nil {
		return fmt.Errorf("build prompt: %w", err)
	}

	answer, err := r.complete(ctx, []llm.Message{llm.UserMessage(text)})
	if err != nil {
		return err
	}

	if err := r.Printer.FewShot(query, answer, text); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

// RunChat один раз отправляет статический промпт и печатает ответ.
func (r *Runner) RunChat(ctx context.Context, chat prompt.Chat) error {
	turns := chat.Turns()
	messages := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, llm.Message{Role: t.Role, Content: t.Content})
	}

	answer, err := r.complete(ctx, messages)
	if err != nil {
		return err
	}

	if err := r.Printer.Chat(chat.User, answer); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

func (r *Runner) complete(ctx context.Context, messages []llm.Message) (string, error) {
	resp, err := r.Client.Complete(ctx, llm.Request{
		Model:       r.Model,
		Messages:    messages,
		Temperature: r.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("complete with %s: %w", r.Model, err)
	}

	if r.Logger != nil {
		r.Logger.Debug("model answered",
			slog.String("model", resp.Model),
			slog.Int("prompt_tokens", resp.PromptTokens),
			slog.Int("completion_tokens", resp.CompletionTokens))
	}
	return resp.Text, nil
}

// NewLogger возвращает JSON slog-логгер в w с заданным уровнем.
func NewLogger(level string, w io.Writer) *slog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel}))
}
