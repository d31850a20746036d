// Интерфейс Провайдера через который работает всё приложение.

package llm

import "context"

// Provider — контракт для любого AI-сервиса.
//
// Подсказчик паттернов (pkg/pattern.Suggester) знает только этот
// интерфейс: "промпт на входе, текст на выходе, либо ошибка".
type Provider interface {
	// Chat отправляет запрос и возвращает текстовый ответ модели
	Chat(ctx context.Context, req ChatRequest) (string, error)
}
