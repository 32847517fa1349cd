// Command fewshot спрашивает у модели, какая эмоция связана с "purple",
// показывая ей несколько примеров цвет/эмоция, и печатает ответ и промпт.
package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"promptdemo/internal/config"
	"promptdemo/internal/demo"
	"promptdemo/internal/llm"
	"promptdemo/internal/output"
	"promptdemo/internal/prompt"
	"promptdemo/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := demo.NewLogger(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("fewshot failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	remote, err := cfg.Remote()
	if err != nil {
		return err
	}

	examples := prompt.ColorEmotions()
	if cfg.ExamplesFile != "" {
		examples, err = prompt.LoadExamples(cfg.ExamplesFile)
		if err != nil {
			return err
		}
	}

	client := llm.NewChatCompletionsClient(llm.ChatCompletionsConfig{
		APIKey:  remote.APIKey,
		BaseURL: remote.BaseURL,
	}, transport.NewHTTPClient(cfg.RequestTimeout), logger)
	defer client.Close()

	runner := &demo.Runner{
		Client:      client,
		Model:       remote.Model,
		Temperature: demo.Temperature,
		Printer:     output.NewPrinter(out),
		Logger:      logger,
	}
	return runner.RunFewShot(ctx, prompt.ColorEmotionPrompt(examples), prompt.DefaultColor)
}
