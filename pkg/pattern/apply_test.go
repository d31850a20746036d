package pattern

import (
	"errors"
	"reflect"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		pattern  string
		expected []string
	}{
		{
			name:     "comma fields joined with pipe",
			lines:    []string{"a,b,c", "d,e,f"},
			pattern:  `([^,]+),([^,]+),([^,]+)`,
			expected: []string{"a|b|c", "d|e|f"},
		},
		{
			name:     "non-matching lines silently skipped",
			lines:    []string{"1-2", "oops", "3-4"},
			pattern:  `(\d+)-(\d+)`,
			expected: []string{"1|2", "3|4"},
		},
		{
			name:     "first match search without anchoring",
			lines:    []string{"id=42 rest"},
			pattern:  `(\d+)`,
			expected: []string{"42"},
		},
		{
			name:     "no lines give no output",
			lines:    nil,
			pattern:  `(.*)`,
			expected: nil,
		},
		{
			name:     "nothing matches gives no output",
			lines:    []string{"abc", "def"},
			pattern:  `(\d+)`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Apply(tt.lines, tt.pattern)
			if err != nil {
				t.Fatalf("Apply() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Apply() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestApply_InvalidPattern(t *testing.T) {
	result, err := Apply([]string{"a,b,c"}, `([unclosed`)

	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("Apply() error = %v, want ErrInvalidPattern", err)
	}
	if result != nil {
		t.Errorf("Apply() with invalid pattern must not produce partial output, got %v", result)
	}
}

// Сквозной сценарий из подсказки в форматирование: fallback-паттерн
// для запятых воспроизводит поля в исходном порядке через `|`.
func TestApply_FallbackRoundTrip(t *testing.T) {
	lines := []string{"a,b,c", "d,e,f"}

	p := Fallback(lines, "[x]|[y]|[z]")
	result, err := Apply(lines, p)
	if err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}

	expected := []string{"a|b|c", "d|e|f"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Apply(Fallback()) = %v, want %v", result, expected)
	}
}
