// Подсказчик паттернов: спрашиваем модель, чистим ответ,
// при любой ошибке откатываемся на детерминированный генератор.
package pattern

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ilkoid/pattern-ai/pkg/config"
	"github.com/ilkoid/pattern-ai/pkg/llm"
	"github.com/ilkoid/pattern-ai/pkg/prompt"
	"github.com/ilkoid/pattern-ai/pkg/utils"
)

// ErrEmptyResponse — модель ответила, но после очистки не осталось паттерна.
var ErrEmptyResponse = errors.New("empty response from model")

// Модели показываем не больше этого количества строк данных.
const maxSampleLines = 10

// Низкая температура и короткий ответ: нам нужен один паттерн,
// а не рассуждения.
const (
	defaultTemperature = 0.1
	defaultMaxTokens   = 150
)

// Source — откуда взялся подсказанный паттерн.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Suggestion — результат подсказки.
type Suggestion struct {
	Pattern string
	Source  Source
	Cause   error // Причина отката, заполнена только при Source == SourceFallback
}

// Suggester спрашивает у LLM regex-паттерн для сэмпла данных.
//
// Явно конструируемый коллаборатор: провайдер и промпт передаются
// снаружи, никаких глобальных хэндлов модели.
type Suggester struct {
	provider   llm.Provider
	promptFile *prompt.PromptFile
	modelDef   config.ModelDef
}

// NewSuggester создаёт подсказчик.
//
// provider может быть nil (AI не настроен) — тогда Suggest всегда
// возвращает fallback-паттерн. promptFile == nil включает встроенный промпт.
func NewSuggester(provider llm.Provider, promptFile *prompt.PromptFile, modelDef config.ModelDef) *Suggester {
	if promptFile == nil {
		promptFile = builtinPrompt()
	}
	return &Suggester{
		provider:   provider,
		promptFile: promptFile,
		modelDef:   modelDef,
	}
}

// promptData — данные для рендера промпта.
type promptData struct {
	Samples string // Первые строки данных, склеенные через \n
	Format  string // Желаемый формат вывода пользователя
}

// Suggest возвращает regex-паттерн для сэмпла данных и формата пользователя.
//
// Единственная операция с автоматическим повтором: при любой ошибке
// на стороне AI (сеть, пустой ответ, провайдер не настроен) результат
// подменяется на Fallback, а причина сохраняется в Suggestion.Cause.
// Ошибка возвращается только при отменённом контексте.
func (s *Suggester) Suggest(ctx context.Context, samples []string, hint string) (Suggestion, error) {
	cleaned, err := s.ask(ctx, samples, hint)
	if err != nil {
		if ctx.Err() != nil {
			return Suggestion{}, ctx.Err()
		}
		utils.Warn("AI suggestion failed, using fallback pattern", "error", err)
		return Suggestion{
			Pattern: Fallback(samples, hint),
			Source:  SourceFallback,
			Cause:   err,
		}, nil
	}

	utils.Info("AI pattern suggested", "pattern", cleaned)
	return Suggestion{Pattern: cleaned, Source: SourceAI}, nil
}

// ask выполняет запрос к модели и чистит ответ.
func (s *Suggester) ask(ctx context.Context, samples []string, hint string) (string, error) {
	if s.provider == nil {
		return "", errors.New("no AI provider configured")
	}

	head := samples
	if len(head) > maxSampleLines {
		head = head[:maxSampleLines]
	}

	rendered, err := s.promptFile.RenderMessages(promptData{
		Samples: strings.Join(head, "\n"),
		Format:  hint,
	})
	if err != nil {
		return "", fmt.Errorf("prompt render failed: %w", err)
	}

	messages := make([]llm.Message, len(rendered))
	for i, m := range rendered {
		messages[i] = llm.Message{Role: m.Role, Content: m.Content}
	}

	temperature := s.modelDef.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := s.modelDef.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	raw, err := s.provider.Chat(ctx, llm.ChatRequest{
		Model:       s.modelDef.ModelName,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}

	cleaned := utils.CleanPatternResponse(raw)
	if cleaned == "" {
		return "", ErrEmptyResponse
	}

	return cleaned, nil
}

// builtinPrompt — встроенный промпт на случай отсутствия yaml файла.
// Дублирует prompts/pattern_suggest.yaml.
func builtinPrompt() *prompt.PromptFile {
	return &prompt.PromptFile{
		Name: "pattern_suggest",
		Messages: []prompt.Message{
			{
				Role:    llm.RoleSystem,
				Content: "You are a data analyst. You answer with a single regular expression and nothing else.",
			},
			{
				Role: llm.RoleUser,
				Content: `Analyze the following data pattern and create a precise regex pattern to extract the required fields.

SAMPLE DATA:
{{.Samples}}

EXPECTED OUTPUT FORMAT: {{.Format}}

INSTRUCTIONS:
1. Study the data structure carefully - identify separators, delimiters, and patterns
2. Count how many fields need to be extracted based on the expected format
3. Create a regex pattern with appropriate capture groups for each field
4. Consider different data types (numbers, text, special characters, etc.)
5. Handle edge cases like empty fields or varying lengths

REQUIREMENTS:
- Provide ONLY the regex pattern (no explanations, no code blocks)
- Use capture groups () for each field to extract
- Make sure the pattern matches the data structure shown

Regex Pattern:`,
			},
		},
	}
}
