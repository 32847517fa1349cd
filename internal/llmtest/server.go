// Package llmtest поднимает поддельного провайдера моделей для тестов.
// Он понимает OpenAI-совместимый /chat/completions и /api/chat Ollama,
// отвечает заготовленным текстом и запоминает полученные запросы.
package llmtest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"promptdemo/internal/httpserver"
	"promptdemo/internal/middleware"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request — один запрос, полученный поддельным провайдером.
type Request struct {
	Path          string
	RequestID     string
	Authorization string
	Model         string
	Messages      []Message
	// Temperature равен nil, если клиент её не передал.
	Temperature *float64
	Stream      *bool
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	reply    string
	status   int
	message  string
	requests []Request
}

// NewServer запускает провайдера, отвечающего reply. Закрывается в t.Cleanup.
func NewServer(t testing.TB, reply string) *Server {
	t.Helper()

	s := &Server{reply: reply}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Server = httptest.NewServer(httpserver.NewRouter(httpserver.RouterDeps{
		Logger:          logger,
		ChatCompletions: http.HandlerFunc(s.chatCompletions),
		OllamaChat:      http.HandlerFunc(s.ollamaChat),
	}))
	t.Cleanup(s.Close)

	return s
}

// FailWith заставляет все следующие запросы падать со status и message.
func (s *Server) FailWith(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.message = message
}

// Requests возвращает копию всех полученных запросов.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

type incoming struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature"`
	Stream      *bool     `json:"stream"`
	Options     *struct {
		Temperature *float64 `json:"temperature"`
	} `json:"options"`
}

// record сохраняет запрос и сообщает, должен ли обработчик вернуть ошибку.
func (s *Server) record(w http.ResponseWriter, r *http.Request) (incoming, string, bool) {
	var in incoming
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpserver.WriteJSONError(w, http.StatusBadRequest, "bad_json", err.Error())
		return in, "", false
	}

	temperature := in.Temperature
	if in.Options != nil && in.Options.Temperature != nil {
		temperature = in.Options.Temperature
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Request{
		Path:          r.URL.Path,
		RequestID:     r.Header.Get(middleware.HeaderRequestID),
		Authorization: r.Header.Get("Authorization"),
		Model:         in.Model,
		Messages:      in.Messages,
		Temperature:   temperature,
		Stream:        in.Stream,
	})

	if s.status != 0 {
		httpserver.WriteJSONError(w, s.status, "forced_failure", s.message)
		return in, "", false
	}
	return in, s.reply, true
}

func (s *Server) chatCompletions(w http.ResponseWriter, r *http.Request) {
	in, reply, ok := s.record(w, r)
	if !ok {
		return
	}
	httpserver.WriteJSON(w, map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 0,
		"model":   in.Model,
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": reply},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{
			"prompt_tokens":     len(in.Messages),
			"completion_tokens": 1,
			"total_tokens":      len(in.Messages) + 1,
		},
	})
}

func (s *Server) ollamaChat(w http.ResponseWriter, r *http.Request) {
	in, reply, ok := s.record(w, r)
	if !ok {
		return
	}
	httpserver.WriteJSON(w, map[string]any{
		"model":             in.Model,
		"message":           map[string]any{"role": "assistant", "content": reply},
		"done":              true,
		"prompt_eval_count": len(in.Messages),
		"eval_count":        1,
	})
}
