package prompt

// Chat — статический промпт из system и user сообщений.
type Chat struct {
	System string
	User   string
}

// Turn — часть chat-промпта с ролью.
type Turn struct {
	Role    string
	Content string
}

// Turns возвращает system (если задан), затем user.
func (c Chat) Turns() []Turn {
	turns := make([]Turn, 0, 2)
	if c.System != "" {
		turns = append(turns, Turn{Role: "system", Content: c.System})
	}
	return append(turns, Turn{Role: "user", Content: c.User})
}

// ColorChat — статический промпт для демо chat и local.
func ColorChat() Chat {
	return Chat{
		System: "You are a helpful assistant that associates colors with emotions. Answer with a single word.",
		User:   "What emotion is associated with the color purple?",
	}
}
