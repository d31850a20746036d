// Package datafile читает и пишет данные в .txt и .csv файлах.
//
// Чтение возвращает упорядоченную последовательность непустых строк:
// для .txt — строки с обрезанными пробелами, для .csv — строки таблицы,
// склеенные обратно через запятую. Запись — обратная операция:
// .txt построчно, .csv через encoding/csv со сплитом по `|`.
//
// Пути вида s3://bucket/key.txt читаются из объектного хранилища
// (pkg/s3storage), если клиент передан в Reader.
package datafile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound — входной файл не существует.
	ErrNotFound = errors.New("file not found")

	// ErrUnsupportedFormat — расширение не .txt и не .csv.
	ErrUnsupportedFormat = errors.New("unsupported file format, use .txt or .csv")
)

const remotePrefix = "s3://"

// Fetcher скачивает удалённый объект целиком в память.
// Реализуется pkg/s3storage.Client; в тестах подменяется фейком.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Reader читает данные из локальных файлов и, опционально, из s3://.
type Reader struct {
	Remote Fetcher // nil = только локальные файлы
}

// ReadLines загружает файл и возвращает последовательность непустых строк.
//
// Порядок строк файла сохраняется, дубликаты допустимы.
// Ошибки: ErrNotFound для отсутствующего файла, ErrUnsupportedFormat
// для чужого расширения, обёрнутая ошибка чтения для остального.
func (r *Reader) ReadLines(ctx context.Context, path string) ([]string, error) {
	if strings.HasPrefix(path, remotePrefix) {
		return r.readRemote(ctx, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" && ext != ".csv" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return parse(data, ext)
}

// readRemote скачивает объект и парсит его по расширению ключа.
func (r *Reader) readRemote(ctx context.Context, rawURL string) ([]string, error) {
	if r.Remote == nil {
		return nil, fmt.Errorf("s3 path %q given but no s3 storage configured", rawURL)
	}

	ext := strings.ToLower(filepath.Ext(rawURL))
	if ext != ".txt" && ext != ".csv" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, rawURL)
	}

	data, err := r.Remote.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}

	return parse(data, ext)
}

// parse разбирает содержимое файла по расширению.
func parse(data []byte, ext string) ([]string, error) {
	if ext == ".csv" {
		return parseCSV(data)
	}
	return parseTxt(data), nil
}

// parseTxt: каждая непустая строка, с обрезанными пробелами.
func parseTxt(data []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}

// parseCSV: строки таблицы с хотя бы одним непустым полем,
// поля склеиваются обратно через запятую.
func parseCSV(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // допускаем строки разной длины

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	var lines []string
	for _, record := range records {
		if !rowHasData(record) {
			continue
		}
		lines = append(lines, strings.Join(record, ","))
	}
	return lines, nil
}

func rowHasData(record []string) bool {
	for _, field := range record {
		if field != "" {
			return true
		}
	}
	return false
}

// WriteLines сохраняет отформатированные строки в .txt или .csv файл.
//
// .txt — по строке на запись с завершающим переводом строки.
// .csv — запись сплитится по `|` и пишется как строка таблицы.
func WriteLines(lines []string, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" && ext != ".csv" {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	if ext == ".csv" {
		writer := csv.NewWriter(file)
		for _, line := range lines {
			if err := writer.Write(strings.Split(line, "|")); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return fmt.Errorf("failed to flush csv: %w", err)
		}
		return nil
	}

	for _, line := range lines {
		if _, err := file.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}
	return nil
}

// EnsureExt добавляет .txt к выходному пути без поддерживаемого расширения.
// Пользователь часто вводит "output" — сохраняем как "output.txt".
func EnsureExt(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".txt" || ext == ".csv" {
		return path
	}
	return path + ".txt"
}
