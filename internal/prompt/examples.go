package prompt

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoExamples возвращается, когда набор примеров пуст.
var ErrNoExamples = errors.New("example set is empty")

// Example — пара стимул/метка, которую видит модель.
type Example struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

var colorEmotions = [...]Example{
	{Input: "red", Output: "passion"},
	{Input: "blue", Output: "serenity"},
	{Input: "green", Output: "tranquility"},
}

// ColorEmotions возвращает копию встроенных примеров цвет/эмоция.
func ColorEmotions() []Example {
	out := make([]Example, len(colorEmotions))
	copy(out, colorEmotions[:])
	return out
}

// LoadExamples читает YAML-список пар {input, output}.
func LoadExamples(path string) ([]Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read examples: %w", err)
	}
	return ParseExamples(data)
}

func ParseExamples(data []byte) ([]Example, error) {
	var examples []Example
	if err := yaml.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("parse examples: %w", err)
	}
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}
	for i, ex := range examples {
		if ex.Input == "" || ex.Output == "" {
			return nil, fmt.Errorf("parse examples: entry %d needs both input and output", i)
		}
	}
	return examples, nil
}
