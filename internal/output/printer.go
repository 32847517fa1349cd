package output

import (
	"fmt"
	"io"
)

// Printer печатает результаты демо в фиксированном построчном формате.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// FewShot печатает запрошенный цвет, эмоцию от модели и весь промпт.
func (p *Printer) FewShot(query, answer, prompt string) error {
	_, err := fmt.Fprintf(p.w, "Input: 'Color: %s'\nOutput: 'Emotion: %s'\n\nPrompt:\n\n%s\n", query, answer, prompt)
	return err
}

// Chat печатает пользовательский ввод и ответ модели.
func (p *Printer) Chat(input, answer string) error {
	_, err := fmt.Fprintf(p.w, "Input: '%s'\nOutput: '%s'\n", input, answer)
	return err
}
