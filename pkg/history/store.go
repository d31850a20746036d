// Package history хранит журнал подсказанных паттернов в sqlite.
//
// Каждая подсказка (AI или fallback) записывается с исходным файлом
// и форматом пользователя, чтобы паттерн можно было найти и
// переиспользовать в следующей сессии через pattern-history.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry — одна запись журнала.
type Entry struct {
	ID        int64
	CreatedAt time.Time
	InputFile string // Файл, по которому подсказывали
	Format    string // Формат пользователя ("[name]|[email]")
	Pattern   string
	Source    string // "ai" или "fallback"
}

// Store — sqlite-хранилище журнала.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS suggestions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TIMESTAMP NOT NULL,
	input_file TEXT NOT NULL,
	format     TEXT NOT NULL,
	pattern    TEXT NOT NULL,
	source     TEXT NOT NULL
);`

// Open открывает (или создаёт) базу журнала по указанному пути.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save добавляет запись. CreatedAt проставляется автоматически если пуст.
func (s *Store) Save(e Entry) error {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO suggestions (created_at, input_file, format, pattern, source) VALUES (?, ?, ?, ?, ?)`,
		createdAt, e.InputFile, e.Format, e.Pattern, e.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to save suggestion: %w", err)
	}
	return nil
}

// Recent возвращает последние записи, новые первыми.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit < 1 {
		limit = 1
	}

	rows, err := s.db.Query(
		`SELECT id, created_at, input_file, format, pattern, source
		 FROM suggestions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.InputFile, &e.Format, &e.Pattern, &e.Source); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history rows error: %w", err)
	}

	return entries, nil
}

// Close закрывает базу.
func (s *Store) Close() error {
	return s.db.Close()
}
