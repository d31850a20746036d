// Package openai реализует адаптер LLM провайдера для OpenAI-совместимых API.
//
// Работает только через интерфейс llm.Provider: остальное приложение
// не знает, какой SDK используется под капотом.
package openai

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/ilkoid/pattern-ai/pkg/config"
	"github.com/ilkoid/pattern-ai/pkg/llm"
	"github.com/ilkoid/pattern-ai/pkg/utils"
	openai "github.com/sashabaranov/go-openai"
)

// Client реализует интерфейс llm.Provider для OpenAI-совместимых API.
type Client struct {
	api     *openai.Client
	model   string
	limiter *rate.Limiter // nil = без лимита
}

// Проверка контракта на этапе компиляции
var _ llm.Provider = (*Client)(nil)

// NewClient создает OpenAI клиент на основе конфигурации модели.
//
// Все настройки из конфигурации, никакого хардкода:
// поддержка custom BaseURL для non-OpenAI провайдеров (Zai, DeepSeek и т.д.),
// rate limit в запросах/минуту.
func NewClient(modelDef config.ModelDef) *Client {
	cfg := openai.DefaultConfig(modelDef.APIKey)
	if modelDef.BaseURL != "" {
		cfg.BaseURL = modelDef.BaseURL
	}

	var limiter *rate.Limiter
	if modelDef.RateLimit > 0 {
		// rate_limit в запросах/минуту → rate.Limit в запросах/секунду
		perSec := float64(modelDef.RateLimit) / 60.0
		burst := modelDef.BurstLimit
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(perSec), burst)
	}

	return &Client{
		api:     openai.NewClientWithConfig(cfg),
		model:   modelDef.ModelName,
		limiter: limiter,
	}
}

// Chat выполняет запрос к API и возвращает текст ответа модели.
//
// Алгоритм:
//  1. Ждём слот rate limiter-а (уважая контекст)
//  2. Конвертируем внутренние сообщения в формат OpenAI SDK
//  3. Вызываем API
//  4. Возвращаем содержимое первого choice
//
// Все ошибки возвращаются, никаких panic.
func (c *Client) Chat(ctx context.Context, req llm.ChatRequest) (string, error) {
	startTime := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	utils.Debug("LLM request started",
		"model", model,
		"messages_count", len(req.Messages),
		"max_tokens", req.MaxTokens)

	openaiMsgs := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		openaiMsgs[i] = openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		Messages:    openaiMsgs,
	})
	if err != nil {
		utils.Error("LLM API request failed",
			"error", err,
			"model", model,
			"duration_ms", time.Since(startTime).Milliseconds())
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := resp.Choices[0].Message.Content

	utils.Info("LLM response received",
		"model", model,
		"content_length", len(content),
		"duration_ms", time.Since(startTime).Milliseconds())

	return content, nil
}
