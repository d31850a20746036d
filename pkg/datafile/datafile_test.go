package datafile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadLines_Txt(t *testing.T) {
	path := writeTemp(t, "data.txt", "  first line  \n\nsecond line\n   \nthird line\n")

	r := &Reader{}
	lines, err := r.ReadLines(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"first line", "second line", "third line"}, lines,
		"blank lines dropped, whitespace trimmed, order preserved")
}

func TestReadLines_CSV(t *testing.T) {
	path := writeTemp(t, "data.csv", "a,b,c\n,,\nd,e\n")

	r := &Reader{}
	lines, err := r.ReadLines(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a,b,c", "d,e"}, lines,
		"empty rows dropped, fields rejoined with comma")
}

func TestReadLines_UnsupportedFormat(t *testing.T) {
	path := writeTemp(t, "data.json", `{"a": 1}`)

	r := &Reader{}
	_, err := r.ReadLines(context.Background(), path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadLines_NotFound(t *testing.T) {
	r := &Reader{}
	_, err := r.ReadLines(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadLines_CaseInsensitiveExt(t *testing.T) {
	path := writeTemp(t, "DATA.TXT", "line\n")

	r := &Reader{}
	lines, err := r.ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"line"}, lines)
}

// fakeFetcher подменяет s3storage.Client в тестах.
type fakeFetcher struct {
	data   []byte
	err    error
	gotURL string
}

func (f *fakeFetcher) Fetch(_ context.Context, rawURL string) ([]byte, error) {
	f.gotURL = rawURL
	return f.data, f.err
}

func TestReadLines_Remote(t *testing.T) {
	fetcher := &fakeFetcher{data: []byte("x,y\nz,w\n")}
	r := &Reader{Remote: fetcher}

	lines, err := r.ReadLines(context.Background(), "s3://bucket/data.csv")
	require.NoError(t, err)

	assert.Equal(t, "s3://bucket/data.csv", fetcher.gotURL)
	assert.Equal(t, []string{"x,y", "z,w"}, lines)
}

func TestReadLines_RemoteWithoutClient(t *testing.T) {
	r := &Reader{}
	_, err := r.ReadLines(context.Background(), "s3://bucket/data.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no s3 storage configured")
}

func TestReadLines_RemoteUnsupportedFormat(t *testing.T) {
	r := &Reader{Remote: &fakeFetcher{data: []byte("{}")}}
	_, err := r.ReadLines(context.Background(), "s3://bucket/data.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteLines_Txt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, WriteLines([]string{"a|b", "c|d"}, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a|b\nc|d\n", string(content), "one line per entry with trailing newline")
}

func TestWriteLines_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteLines([]string{"a|b", "c|d"}, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\nc,d\n", string(content), "entries split on pipe and written as csv rows")
}

func TestWriteLines_UnsupportedFormat(t *testing.T) {
	err := WriteLines([]string{"a|b"}, filepath.Join(t.TempDir(), "out.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// Round-trip из спецификации поведения: записанный .txt читается
// обратно в ту же последовательность строк.
func TestTxtRoundTrip(t *testing.T) {
	formatted := []string{"a|b|c", "d|e|f", "g|h|i"}
	path := filepath.Join(t.TempDir(), "round.txt")

	require.NoError(t, WriteLines(formatted, path))

	r := &Reader{}
	back, err := r.ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, formatted, back)
}

func TestEnsureExt(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "bare path gets txt", path: "output", expected: "output.txt"},
		{name: "txt kept", path: "output.txt", expected: "output.txt"},
		{name: "csv kept", path: "output.csv", expected: "output.csv"},
		{name: "uppercase kept", path: "output.CSV", expected: "output.CSV"},
		{name: "other extension still gets txt", path: "output.json", expected: "output.json.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureExt(tt.path); got != tt.expected {
				t.Errorf("EnsureExt(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestWriteLines_CreateError(t *testing.T) {
	err := WriteLines([]string{"a"}, filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedFormat), "io failure is not a format error")
}
