package pattern

import (
	"regexp"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Delimiter
	}{
		{
			name:     "pipe wins over comma",
			line:     "a|b,c",
			expected: Pipe,
		},
		{
			name:     "comma",
			line:     "john,doe,42",
			expected: Comma,
		},
		{
			name:     "tab",
			line:     "john\tdoe\t42",
			expected: Tab,
		},
		{
			name:     "semicolon",
			line:     "john;doe;42",
			expected: Semicolon,
		},
		{
			name:     "comma wins over tab",
			line:     "a,b\tc",
			expected: Comma,
		},
		{
			name:     "no delimiter defaults to whitespace",
			line:     "john doe 42",
			expected: Whitespace,
		},
		{
			name:     "empty line defaults to whitespace",
			line:     "",
			expected: Whitespace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Detect(tt.line)
			if result != tt.expected {
				t.Errorf("Detect(%q) = %v, want %v", tt.line, result, tt.expected)
			}
		})
	}
}

func TestFieldCount(t *testing.T) {
	tests := []struct {
		name     string
		hint     string
		expected int
	}{
		{
			name:     "three fields",
			hint:     "[x]|[y]|[z]",
			expected: 3,
		},
		{
			name:     "four fields",
			hint:     "[name]|[email]|[phone]|[age]",
			expected: 4,
		},
		{
			name:     "no pipe means one field",
			hint:     "[id]",
			expected: 1,
		},
		{
			name:     "empty hint means one field",
			hint:     "",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FieldCount(tt.hint)
			if result != tt.expected {
				t.Errorf("FieldCount(%q) = %d, want %d", tt.hint, result, tt.expected)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name     string
		samples  []string
		hint     string
		expected string
	}{
		{
			name:     "empty samples give catch-all",
			samples:  nil,
			hint:     "[x]|[y]",
			expected: `(.*)`,
		},
		{
			name:     "comma separated three fields",
			samples:  []string{"a,b,c", "d,e,f"},
			hint:     "[x]|[y]|[z]",
			expected: `([^,]+),([^,]+),([^,]+)`,
		},
		{
			name:     "pipe separated two fields",
			samples:  []string{"a|b"},
			hint:     "[x]|[y]",
			expected: `([^|]+)\|([^|]+)`,
		},
		{
			name:     "tab separated two fields",
			samples:  []string{"a\tb"},
			hint:     "[x]|[y]",
			expected: `([^\t]+)\t([^\t]+)`,
		},
		{
			name:     "semicolon separated two fields",
			samples:  []string{"a;b"},
			hint:     "[x]|[y]",
			expected: `([^;]+);([^;]+)`,
		},
		{
			name:     "whitespace fallback",
			samples:  []string{"a b c"},
			hint:     "[x]|[y]|[z]",
			expected: `(\S+)\s+(\S+)\s+(\S+)`,
		},
		{
			name:     "hint without pipe gives single group",
			samples:  []string{"a,b,c"},
			hint:     "[whole]",
			expected: `([^,]+)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Fallback(tt.samples, tt.hint)
			if result != tt.expected {
				t.Errorf("Fallback() = %q, want %q", result, tt.expected)
			}
		})
	}
}

// Инвариант: количество capture-групп паттерна равно FieldCount(hint),
// для любого разделителя.
func TestFallback_GroupCountMatchesFieldCount(t *testing.T) {
	firstLines := []string{"a|b|c|d", "a,b,c,d", "a\tb\tc\td", "a;b;c;d", "a b c d"}
	hints := []string{"[a]", "[a]|[b]", "[a]|[b]|[c]", "[a]|[b]|[c]|[d]"}

	for _, line := range firstLines {
		for _, hint := range hints {
			p := Fallback([]string{line}, hint)

			re, err := regexp.Compile(p)
			if err != nil {
				t.Fatalf("Fallback(%q, %q) produced uncompilable pattern %q: %v", line, hint, p, err)
			}
			if got, want := re.NumSubexp(), FieldCount(hint); got != want {
				t.Errorf("Fallback(%q, %q) has %d groups, want %d", line, hint, got, want)
			}
		}
	}
}
