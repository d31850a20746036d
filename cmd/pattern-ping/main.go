// pattern-ping — быстрая проверка связи с AI провайдером.
//
// Отправляет модели по умолчанию крошечный запрос и печатает
// ответ с таймингом. Удобно для отладки config.yaml перед
// работой в pattern-cli.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ilkoid/pattern-ai/pkg/config"
	"github.com/ilkoid/pattern-ai/pkg/factory"
	"github.com/ilkoid/pattern-ai/pkg/llm"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Config load error: %v", err)
	}

	modelDef, ok := cfg.GetChatModel("")
	if !ok {
		log.Fatalf("Default model '%s' not found in config definitions", cfg.Models.DefaultChat)
	}

	fmt.Printf("🤖 Using Model: %s (Provider: %s)\n", cfg.Models.DefaultChat, modelDef.Provider)
	fmt.Printf("🔑 Base URL: %s\n", modelDef.BaseURL)

	provider, err := factory.NewLLMProvider(modelDef)
	if err != nil {
		log.Fatalf("Provider init error: %v", err)
	}

	timeout := modelDef.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	response, err := provider.Chat(ctx, llm.ChatRequest{
		Model:       modelDef.ModelName,
		Temperature: 0.1,
		MaxTokens:   50,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Reply with the single word: pong"},
		},
	})
	duration := time.Since(start)

	if err != nil {
		log.Fatalf("\n❌ LLM Error: %v", err)
	}

	fmt.Printf("\n✅ Response (took %v):\n%s\n", duration, response)
}
