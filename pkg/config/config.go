package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig — корневая структура конфигурации.
// Она зеркалит структуру твоего config.yaml.
type AppConfig struct {
	Models  ModelsConfig  `yaml:"models"`
	S3      S3Config      `yaml:"s3"`
	History HistoryConfig `yaml:"history"`
	App     AppSpecific   `yaml:"app"`
}

// ModelsConfig — настройки AI моделей.
type ModelsConfig struct {
	DefaultChat string              `yaml:"default_chat"` // Алиас модели по умолчанию (например, "glm-4.5")
	Definitions map[string]ModelDef `yaml:"definitions"`  // Словарь определений моделей
}

// ModelDef — параметры конкретной модели.
type ModelDef struct {
	Provider    string        `yaml:"provider"`   // "zai", "openai", "deepseek" и т.д.
	ModelName   string        `yaml:"model_name"` // Реальное имя в API
	APIKey      string        `yaml:"api_key"`    // Поддерживает ${VAR}
	BaseURL     string        `yaml:"base_url"`   // Для non-OpenAI провайдеров
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`    // Go умеет парсить строки вида "60s", "1m"
	RateLimit   int           `yaml:"rate_limit"` // Запросов в минуту (0 = без лимита)
	BurstLimit  int           `yaml:"burst_limit"`
}

// S3Config — настройки объектного хранилища.
//
// Секция опциональна: без endpoint утилита работает только
// с локальными файлами, пути s3:// отклоняются.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"` // Поддерживает ${VAR}
	SecretKey string `yaml:"secret_key"` // Поддерживает ${VAR}
	UseSSL    bool   `yaml:"use_ssl"`
}

// Enabled сообщает, настроено ли удалённое хранилище.
func (s S3Config) Enabled() bool {
	return s.Endpoint != ""
}

// HistoryConfig — журнал подсказанных паттернов (sqlite).
type HistoryConfig struct {
	Path  string `yaml:"path"`  // Путь к .db файлу; пусто = журнал выключен
	Limit int    `yaml:"limit"` // Сколько записей показывать по умолчанию
}

// AppSpecific — общие настройки приложения.
type AppSpecific struct {
	Debug         bool   `yaml:"debug"`
	PromptsDir    string `yaml:"prompts_dir"`
	SamplePreview int    `yaml:"sample_preview"` // Сколько строк показывать в превью
}

// GetDefaults возвращает дефолтные значения для незаполненных полей.
func (c *AppConfig) GetDefaults() *AppConfig {
	result := *c

	if result.App.SamplePreview == 0 {
		result.App.SamplePreview = 5
	}
	if result.App.PromptsDir == "" {
		result.App.PromptsDir = "prompts"
	}
	if result.History.Limit == 0 {
		result.History.Limit = 20
	}

	return &result
}

// Load читает YAML файл, подставляет ENV переменные и возвращает готовую структуру.
func Load(path string) (*AppConfig, error) {
	// 1. Проверяем существование файла
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at: %s", path)
	}

	// 2. Читаем файл целиком
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Подставляем переменные окружения.
	// os.ExpandEnv заменяет ${VAR} или $VAR на значение из системы.
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	// 4. Парсим YAML в структуру
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	// 5. Валидируем критические настройки
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg.GetDefaults(), nil
}

// validate проверяет обязательные поля.
func (c *AppConfig) validate() error {
	if c.Models.DefaultChat != "" {
		if _, ok := c.Models.Definitions[c.Models.DefaultChat]; !ok {
			return fmt.Errorf("default_chat model '%s' is not defined in definitions", c.Models.DefaultChat)
		}
	}
	if c.S3.Enabled() && c.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required when s3.endpoint is set")
	}
	return nil
}

// GetChatModel возвращает конфигурацию модели по умолчанию или по имени.
func (c *AppConfig) GetChatModel(name string) (ModelDef, bool) {
	if name == "" {
		name = c.Models.DefaultChat
	}
	m, ok := c.Models.Definitions[name]
	return m, ok
}
