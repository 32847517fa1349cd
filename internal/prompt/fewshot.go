package prompt

import (
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/prompts"
)

// ErrTemplate оборачивает любую ошибку сборки или рендеринга few-shot шаблона.
var ErrTemplate = errors.New("invalid prompt template")

// FewShot описывает few-shot промпт: префикс, примеры и суффикс с запросом.
// Шаблоны используют f-string синтаксис: {name}, а {{ и }} дают литеральные скобки.
type FewShot struct {
	Examples        []Example
	ExampleTemplate string
	// InputKey и OutputKey — имена плейсхолдеров ExampleTemplate для Example.Input и Example.Output.
	InputKey  string
	OutputKey string
	Prefix    string
	Suffix    string
	// QueryKey — плейсхолдер в Prefix и Suffix, куда подставляется запрос.
	QueryKey  string
	Separator string
}

// Template собирает langchaingo FewShotPrompt. Шаблон проверяется сразу,
// поэтому плейсхолдер, которого нет среди переменных, даёт ошибку до вызова модели.
func (f FewShot) Template() (*prompts.FewShotPrompt, error) {
	if len(f.Examples) == 0 {
		return nil, ErrNoExamples
	}

	examples := make([]map[string]string, 0, len(f.Examples))
	for _, ex := range f.Examples {
		examples = append(examples, map[string]string{
			f.InputKey:  ex.Input,
			f.OutputKey: ex.Output,
		})
	}

	examplePrompt := prompts.PromptTemplate{
		Template:       f.ExampleTemplate,
		InputVariables: []string{f.InputKey, f.OutputKey},
		TemplateFormat: prompts.TemplateFormatFString,
	}

	p, err := prompts.NewFewShotPrompt(
		examplePrompt,
		examples,
		nil,
		f.Prefix,
		f.Suffix,
		[]string{f.QueryKey},
		nil,
		f.Separator,
		prompts.TemplateFormatFString,
		true,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	return p, nil
}

// Format рендерит промпт для query: префикс, примеры в порядке списка и суффикс
// через Separator, пустые части пропускаются.
func (f FewShot) Format(query string) (string, error) {
	p, err := f.Template()
	if err != nil {
		return "", err
	}

	text, err := p.Format(map[string]any{f.QueryKey: query})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	return text, nil
}

const (
	colorExampleTemplate = "\nColor: {color}\nEmotion: {emotion}\n"
	colorPrefix          = "Here are some examples of colors and the emotions associated with them:"
	colorSuffix          = "Now, given a new color, identify the emotion associated with it:\nColor: {input}\nEmotion:"
)

// DefaultColor — цвет, о котором спрашивает few-shot демо.
const DefaultColor = "purple"

// ColorEmotionPrompt возвращает few-shot промпт цвет/эмоция над examples.
func ColorEmotionPrompt(examples []Example) FewShot {
	return FewShot{
		Examples:        examples,
		ExampleTemplate: colorExampleTemplate,
		InputKey:        "color",
		OutputKey:       "emotion",
		Prefix:          colorPrefix,
		Suffix:          colorSuffix,
		QueryKey:        "input",
		Separator:       "\n",
	}
}
