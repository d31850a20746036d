// Красота

package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Цвета
	primaryColor = lipgloss.Color("62")  // Фиолетовый
	grayColor    = lipgloss.Color("240")

	// Стиль хедера меню
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 1).
			Bold(true)

	// Стили сообщений
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")). // Зеленый
			Render

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true).
			Render

	hintStyle = lipgloss.NewStyle().
			Foreground(grayColor).
			Render
)

// Header рендерит заголовок раздела меню.
func Header(title string) string {
	return headerStyle.Render(title)
}

// Success — зелёное сообщение об успехе.
func Success(msg string) string {
	return successStyle("✅ " + msg)
}

// Errorf — красное сообщение об ошибке.
func Errorf(msg string) string {
	return errorStyle("❌ " + msg)
}

// Hint — серый вспомогательный текст.
func Hint(msg string) string {
	return hintStyle(msg)
}
