package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel       string
	RequestTimeout time.Duration
	ExamplesFile   string
	OpenAI         OpenAIConfig
	Ollama         OllamaConfig
}

type OpenAIConfig struct {
	APIKey  string `validate:"required"`
	BaseURL string `validate:"required,url"`
	Model   string `validate:"required"`
}

type OllamaConfig struct {
	BaseURL string `validate:"required,url"`
	Model   string `validate:"required"`
}

// Load читает необязательный .env и переменные окружения.
// Обязательность полей проверяется позже, в Remote/Local.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.ExamplesFile = getEnv("FEWSHOT_EXAMPLES_FILE", "")

	reqTimeout, err := parseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_CLIENT_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = reqTimeout

	cfg.OpenAI = OpenAIConfig{
		APIKey:  getEnv("OPENAI_API_KEY", ""),
		BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	cfg.Ollama = OllamaConfig{
		BaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		Model:   getEnv("LOCAL_MODEL", ""),
	}

	return cfg, nil
}

// Remote возвращает настройки удалённого OpenAI-совместимого API.
func (c Config) Remote() (OpenAIConfig, error) {
	if err := validate.Struct(c.OpenAI); err != nil {
		return OpenAIConfig{}, fmt.Errorf("openai config: %w", err)
	}
	return c.OpenAI, nil
}

// Local возвращает настройки локального сервера моделей.
func (c Config) Local() (OllamaConfig, error) {
	if err := validate.Struct(c.Ollama); err != nil {
		return OllamaConfig{}, fmt.Errorf("ollama config: %w", err)
	}
	return c.Ollama, nil
}

var validate = validator.New()

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration is negative: %s", value)
	}
	return d, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}
