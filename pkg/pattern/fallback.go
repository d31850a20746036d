// Package pattern содержит детерминированное ядро утилиты:
// генератор fallback-паттернов, применение regex к данным
// и подсказчик паттернов через LLM.
//
// Fallback-генератор — то, что остаётся когда AI недоступен:
// определяем разделитель по первой строке данных и строим паттерн
// с количеством capture-групп, вычисленным из формата пользователя.
package pattern

import "strings"

// Delimiter — разделитель полей, распознаваемый fallback-генератором.
type Delimiter int

const (
	Pipe Delimiter = iota
	Comma
	Tab
	Semicolon
	Whitespace // дефолт, когда ни один символ не найден
)

// String возвращает человекочитаемое имя разделителя.
func (d Delimiter) String() string {
	switch d {
	case Pipe:
		return "pipe"
	case Comma:
		return "comma"
	case Tab:
		return "tab"
	case Semicolon:
		return "semicolon"
	default:
		return "whitespace"
	}
}

// group/separator — фрагменты regex для каждого разделителя.
// Группа исключает сам разделитель из символьного класса.
func (d Delimiter) fragments() (group, separator string) {
	switch d {
	case Pipe:
		return `([^|]+)`, `\|`
	case Comma:
		return `([^,]+)`, `,`
	case Tab:
		return `([^\t]+)`, `\t`
	case Semicolon:
		return `([^;]+)`, `;`
	default:
		return `(\S+)`, `\s+`
	}
}

// Detect определяет разделитель по строке данных.
//
// Проверка в фиксированном порядке приоритета: `|`, `,`, tab, `;`.
// Первый найденный побеждает; если не найден ни один — Whitespace.
func Detect(line string) Delimiter {
	switch {
	case strings.Contains(line, "|"):
		return Pipe
	case strings.Contains(line, ","):
		return Comma
	case strings.Contains(line, "\t"):
		return Tab
	case strings.Contains(line, ";"):
		return Semicolon
	default:
		return Whitespace
	}
}

// FieldCount вычисляет количество полей из формата пользователя.
//
// Формат вида "[name]|[email]|[phone]" — поля разделены `|`.
// Без `|` в формате считаем что поле одно.
func FieldCount(hint string) int {
	if !strings.Contains(hint, "|") {
		return 1
	}
	return strings.Count(hint, "|") + 1
}

// Fallback строит детерминированный regex-паттерн по сэмплу данных
// и формату пользователя.
//
// Инвариант: количество capture-групп в результате равно FieldCount(hint).
// Пустой сэмпл даёт catch-all паттерн из одной группы на всю строку.
func Fallback(samples []string, hint string) string {
	if len(samples) == 0 {
		return `(.*)`
	}

	group, separator := Detect(samples[0]).fragments()
	fieldCount := FieldCount(hint)

	return group + strings.Repeat(separator+group, fieldCount-1)
}
