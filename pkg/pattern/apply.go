// Применение паттерна: строки данных → строки "поле|поле|поле".
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern — паттерн не компилируется как регулярное выражение.
var ErrInvalidPattern = errors.New("invalid regex pattern")

// Apply применяет regex-паттерн к каждой строке данных.
//
// Паттерн компилируется ДО обработки: некомпилируемый паттерн
// возвращает ErrInvalidPattern сразу, без частичного результата.
//
// Для каждой строки выполняется поиск первого совпадения (без
// якорей на всю строку). При совпадении capture-группы склеиваются
// через `|`; строки без совпадения молча пропускаются — порядок
// совпавших строк сохраняется.
func Apply(lines []string, patternStr string) ([]string, error) {
	re, err := regexp.Compile(patternStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	var formatted []string
	for _, line := range lines {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		// m[0] — всё совпадение, группы начинаются с m[1]
		formatted = append(formatted, strings.Join(m[1:], "|"))
	}

	return formatted, nil
}
