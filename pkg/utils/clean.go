// Очистка ответов LLM от markdown-обёртки и текстовых меток.
package utils

import (
	"strings"
)

// labelPrefixes — метки, которые модель любит ставить перед паттерном.
// Порядок важен: более длинные префиксы проверяются раньше.
var labelPrefixes = []string{
	"regex pattern:",
	"regex:",
	"pattern:",
	"answer:",
	"result:",
}

// CleanPatternResponse извлекает регулярное выражение из сырого ответа LLM.
//
// Модель, несмотря на инструкцию "ONLY the regex pattern", часто
// возвращает паттерн обёрнутым в markdown code block, с меткой
// ("Regex:", "Pattern:") или с пояснением на следующих строках.
//
// Алгоритм:
//  1. Если есть code fence — берём первую непустую строку,
//     не являющуюся fence или комментарием
//  2. Срезаем известные метки (без учёта регистра)
//  3. Отбрасываем всё после первого перевода строки
//  4. Снимаем одиночные backticks
//
// Примеры:
//
//	"```\n([^,]+),([^,]+)\n```"  → "([^,]+),([^,]+)"
//	"Regex: (\\S+)\\s+(\\S+)"    → "(\\S+)\\s+(\\S+)"
//	"`(.*)`"                     → "(.*)"
func CleanPatternResponse(s string) string {
	s = strings.TrimSpace(s)

	// 1. Code fence: ищем первую содержательную строку
	if strings.Contains(s, "```") {
		for _, line := range strings.Split(s, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "```") || strings.HasPrefix(line, "#") {
				continue
			}
			s = line
			break
		}
	}

	// 2. Срезаем метки. Цикл, потому что модель может
	// склеить "Answer: Pattern: ..."
	for {
		trimmed := false
		lower := strings.ToLower(s)
		for _, prefix := range labelPrefixes {
			if strings.HasPrefix(lower, prefix) {
				s = strings.TrimSpace(s[len(prefix):])
				trimmed = true
				break
			}
		}
		if !trimmed {
			break
		}
	}

	// 3. Паттерн — только первая строка, остальное пояснения
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}

	// 4. Инлайн-код `...`
	s = strings.Trim(strings.TrimSpace(s), "`")

	return strings.TrimSpace(s)
}
