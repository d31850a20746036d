// Структуры YAML файла промпта.

package prompt

// PromptFile — корень YAML файла промпта.
type PromptFile struct {
	Name     string    `yaml:"name"`
	Messages []Message `yaml:"messages"`
}

// Message — одно сообщение промпта.
// Content может содержать плейсхолдеры text/template ({{.Samples}}).
type Message struct {
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
}
