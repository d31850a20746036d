// pattern-history — просмотр журнала подсказанных паттернов.
//
// Печатает последние записи из sqlite базы, указанной в history.path
// конфига. Количество записей — history.limit.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ilkoid/pattern-ai/pkg/config"
	"github.com/ilkoid/pattern-ai/pkg/history"
)

func main() {
	cfgPath := os.Getenv("PATTERN_AI_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Config load error: %v", err)
	}
	if cfg.History.Path == "" {
		log.Fatal("history.path is not set in config, nothing to show")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		log.Fatalf("History open error: %v", err)
	}
	defer store.Close()

	entries, err := store.Recent(cfg.History.Limit)
	if err != nil {
		log.Fatalf("History query error: %v", err)
	}
	if len(entries) == 0 {
		fmt.Println("History is empty.")
		return
	}

	for _, e := range entries {
		fmt.Printf("[%s] %s (%s)\n", e.CreatedAt.Format("2006-01-02 15:04"), e.InputFile, e.Source)
		fmt.Printf("    format:  %s\n", e.Format)
		fmt.Printf("    pattern: %s\n", e.Pattern)
	}
}
