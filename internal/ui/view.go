// Текстовые хелперы для интерактивного вывода: превью данных,
// перенос длинных подсказок по словам.
package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Ширина переноса help-текста в терминале.
const wrapWidth = 72

// Preview возвращает нумерованное превью первых n строк данных.
// Без стилей — результат безопасно писать и в файл, и в терминал.
func Preview(lines []string, n int) string {
	if n > len(lines) {
		n = len(lines)
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "   %d: %s\n", i+1, lines[i])
	}
	if len(lines) > n {
		fmt.Fprintf(&b, "   ... and %d more lines\n", len(lines)-n)
	}
	return b.String()
}

// Wrap переносит длинный текст по словам.
func Wrap(s string) string {
	return wordwrap.String(s, wrapWidth)
}
