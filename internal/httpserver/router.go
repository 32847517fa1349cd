package httpserver

import (
	"log/slog"
	"net/http"

	"promptdemo/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RouterDeps — обработчики, которые монтирует роутер. Nil-обработчик не регистрируется.
type RouterDeps struct {
	Logger *slog.Logger
	// ChatCompletions обслуживает OpenAI-совместимый /chat/completions.
	ChatCompletions http.Handler
	// OllamaChat обслуживает /api/chat локального сервера.
	OllamaChat http.Handler
}

// NewRouter собирает chi-роутер поддельного провайдера моделей.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))

	if deps.ChatCompletions != nil {
		r.Post("/chat/completions", deps.ChatCompletions.ServeHTTP)
		r.Post("/v1/chat/completions", deps.ChatCompletions.ServeHTTP)
	}
	if deps.OllamaChat != nil {
		r.Post("/api/chat", deps.OllamaChat.ServeHTTP)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusNotFound, "not_found", "unknown route "+r.URL.Path)
	})

	return r
}
