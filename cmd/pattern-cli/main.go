// pattern-cli — интерактивная утилита "Universal Data Pattern Identifier
// and Formatter".
//
// Два режима:
//  1. Подсказка regex-паттерна для данных через AI (с детерминированным
//     fallback-ом, когда AI недоступен)
//  2. Форматирование всего файла по паттерну пользователя в
//     pipe-delimited текст или CSV
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilkoid/pattern-ai/internal/ui"
	"github.com/ilkoid/pattern-ai/pkg/config"
	"github.com/ilkoid/pattern-ai/pkg/datafile"
	"github.com/ilkoid/pattern-ai/pkg/factory"
	"github.com/ilkoid/pattern-ai/pkg/history"
	"github.com/ilkoid/pattern-ai/pkg/pattern"
	"github.com/ilkoid/pattern-ai/pkg/prompt"
	"github.com/ilkoid/pattern-ai/pkg/s3storage"
	"github.com/ilkoid/pattern-ai/pkg/utils"
)

const defaultChatTimeout = 60 * time.Second

// app — собранные зависимости одной интерактивной сессии.
// Никаких глобальных хэндлов: всё конструируется в main и передаётся явно.
type app struct {
	cfg       *config.AppConfig
	reader    *datafile.Reader
	suggester *pattern.Suggester
	store     *history.Store // nil = журнал выключен
	timeout   time.Duration
	in        *bufio.Scanner
	eof       bool
	lastInput string // Последний прочитанный файл, для журнала
}

func main() {
	if err := utils.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger init failed: %v\n", err)
	}

	ctx, shutdown := utils.SetupGracefulShutdownWithContext()
	defer shutdown()

	fmt.Println(ui.Header("=== Universal Data Pattern Identifier and Formatter ==="))
	fmt.Println()

	a := buildApp(configPath())
	defer func() {
		if a.store != nil {
			a.store.Close()
		}
	}()

	a.run(ctx)
}

// configPath: переменная окружения или config.yaml рядом с бинарником.
func configPath() string {
	if p := os.Getenv("PATTERN_AI_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}

// buildApp собирает зависимости по конфигу.
//
// Любая недоступная подсистема (конфиг, AI, s3, журнал) деградирует
// с предупреждением: утилита остаётся рабочей в fallback-режиме,
// как требует контракт меню — ни одна ошибка не фатальна.
func buildApp(cfgPath string) *app {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Println(ui.Hint(fmt.Sprintf("Config not loaded (%v), AI suggestions will use the fallback generator.", err)))
		utils.Warn("Config load failed, running without AI", "error", err)
		cfg = (&config.AppConfig{}).GetDefaults()
	}
	utils.SetDebug(cfg.App.Debug)

	a := &app{
		cfg:     cfg,
		reader:  &datafile.Reader{},
		timeout: defaultChatTimeout,
		in:      bufio.NewScanner(os.Stdin),
	}

	// AI провайдер
	modelDef, ok := cfg.GetChatModel("")
	if ok {
		provider, err := factory.NewLLMProvider(modelDef)
		if err != nil {
			fmt.Println(ui.Hint(fmt.Sprintf("AI provider init failed (%v), using fallback generator.", err)))
			utils.Warn("Provider init failed", "error", err)
		} else {
			fmt.Printf("🤖 Using Model: %s (Provider: %s)\n", cfg.Models.DefaultChat, modelDef.Provider)
		}
		if modelDef.Timeout > 0 {
			a.timeout = modelDef.Timeout
		}
		a.suggester = pattern.NewSuggester(provider, loadPromptFile(cfg), modelDef)
	} else {
		a.suggester = pattern.NewSuggester(nil, nil, config.ModelDef{})
	}

	// Объектное хранилище (опционально)
	if cfg.S3.Enabled() {
		s3client, err := s3storage.New(cfg.S3)
		if err != nil {
			fmt.Println(ui.Hint(fmt.Sprintf("S3 init failed (%v), s3:// paths disabled.", err)))
			utils.Warn("S3 init failed", "error", err)
		} else {
			a.reader.Remote = s3client
		}
	}

	// Журнал подсказок (опционально)
	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			fmt.Println(ui.Hint(fmt.Sprintf("History db init failed (%v), suggestions won't be recorded.", err)))
			utils.Warn("History open failed", "error", err)
		} else {
			a.store = store
		}
	}

	return a
}

// loadPromptFile загружает yaml промпт; nil включает встроенный.
func loadPromptFile(cfg *config.AppConfig) *prompt.PromptFile {
	path := filepath.Join(cfg.App.PromptsDir, "pattern_suggest.yaml")
	pf, err := prompt.Load(path)
	if err != nil {
		utils.Debug("Prompt file not loaded, using builtin", "path", path, "error", err)
		return nil
	}
	return pf
}

// run — главный цикл меню. Ошибки операций печатаются, цикл продолжается.
func (a *app) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Println("\n" + strings.Repeat("=", 50))
		fmt.Println("Select an option:")
		fmt.Println("1. Get Regex Pattern (Analyze any data and identify pattern using AI)")
		fmt.Println("2. Format Data (Apply your regex pattern to format entire file)")
		fmt.Println("3. Exit")
		fmt.Println(strings.Repeat("=", 50))

		choice := a.ask("\nEnter your choice (1/2/3): ")
		if a.eof {
			return
		}

		switch choice {
		case "1":
			a.suggestPattern(ctx)
		case "2":
			a.formatFile(ctx)
		case "3":
			fmt.Println("\n👋 Goodbye!")
			return
		default:
			fmt.Println(ui.Errorf("Invalid choice. Please select 1, 2, or 3."))
		}

		if a.eof {
			return
		}
	}
}

// ask печатает приглашение и читает одну строку stdin.
func (a *app) ask(promptText string) string {
	fmt.Print(promptText)
	if !a.in.Scan() {
		a.eof = true
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

// suggestPattern — пункт меню 1: подсказка паттерна.
func (a *app) suggestPattern(ctx context.Context) {
	fmt.Println("\n🔍 PATTERN RECOGNITION MODE")
	fmt.Println("This will analyze your data and suggest a regex pattern")

	lines, ok := a.readInput(ctx)
	if !ok {
		return
	}

	fmt.Println("\n📝 Specify your desired output format:")
	fmt.Println(ui.Hint("Examples:"))
	fmt.Println(ui.Hint("  - [field1]|[field2]|[field3]|[field4]   (for 4 fields)"))
	fmt.Println(ui.Hint("  - [name]|[email]|[phone]                (for 3 fields)"))
	fmt.Println(ui.Hint("  - [id]|[data]                           (for 2 fields)"))
	hint := a.ask("Enter expected output format: ")
	if hint == "" {
		fmt.Println(ui.Errorf("No output format specified."))
		return
	}

	fmt.Println("\n🤖 Analyzing data...")
	suggestCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	sug, err := a.suggester.Suggest(suggestCtx, lines, hint)
	if err != nil {
		fmt.Println(ui.Errorf(fmt.Sprintf("Suggestion aborted: %v", err)))
		return
	}
	if sug.Source == pattern.SourceFallback {
		fmt.Println(ui.Hint(ui.Wrap(fmt.Sprintf("AI unavailable (%v), showing deterministic fallback pattern.", sug.Cause))))
	}

	fmt.Println("\n" + ui.Success("SUGGESTED REGEX PATTERN:"))
	fmt.Printf("📋 %s\n", sug.Pattern)
	fmt.Println(ui.Hint("Copy this pattern to use in Option 2 for formatting your data!"))

	a.record(sug, hint)

	if strings.EqualFold(a.ask("\n🧪 Test this pattern with sample data? (y/n): "), "y") {
		a.testPattern(lines, sug.Pattern)
	}
}

// testPattern прогоняет подсказанный паттерн по первым строкам данных.
func (a *app) testPattern(lines []string, patternStr string) {
	sample := lines
	if len(sample) > 5 {
		sample = sample[:5]
	}

	results, err := pattern.Apply(sample, patternStr)
	if err != nil {
		fmt.Println(ui.Errorf(fmt.Sprintf("Error testing pattern: %v", err)))
		return
	}
	if len(results) == 0 {
		fmt.Println(ui.Errorf("Pattern didn't match sample data. May need adjustment."))
		return
	}

	fmt.Println(ui.Success("Pattern test results:"))
	fmt.Print(ui.Preview(results, 3))
}

// formatFile — пункт меню 2: форматирование файла по паттерну пользователя.
func (a *app) formatFile(ctx context.Context) {
	fmt.Println("\n⚙️ DATA FORMATTING MODE")
	fmt.Println("This will format your entire file using your regex pattern")

	lines, ok := a.readInput(ctx)
	if !ok {
		return
	}

	fmt.Println("\n🎯 Enter your regex pattern:")
	fmt.Println(ui.Hint(`Examples:`))
	fmt.Println(ui.Hint(`  - ([^|]+)\|([^|]+)\|([^|]+)\|([^|]+)  (4 pipe-separated fields)`))
	fmt.Println(ui.Hint(`  - ([^,]+),([^,]+),([^,]+)             (3 comma-separated fields)`))
	fmt.Println(ui.Hint(`  - (\w+)\s+(\w+)\s+(\d+)               (word word number)`))
	patternStr := a.ask("Regex pattern: ")
	if patternStr == "" {
		fmt.Println(ui.Errorf("No pattern provided."))
		return
	}

	fmt.Printf("\n⚙️ Processing all %d lines...\n", len(lines))
	formatted, err := pattern.Apply(lines, patternStr)
	if err != nil {
		fmt.Println(ui.Errorf(err.Error()))
		return
	}
	if len(formatted) == 0 {
		fmt.Println(ui.Errorf("No matches found with the provided pattern."))
		fmt.Println(ui.Hint("💡 Check your regex pattern and try again."))
		return
	}

	fmt.Println(ui.Success(fmt.Sprintf("Successfully formatted %d lines out of %d total lines.", len(formatted), len(lines))))
	fmt.Printf("\n📋 Preview (showing first 10 of %d formatted lines):\n", len(formatted))
	fmt.Print(ui.Preview(formatted, 10))

	outPath := a.ask(fmt.Sprintf("\n💾 Enter output file path to save all %d formatted lines: ", len(formatted)))
	if outPath == "" {
		fmt.Println(ui.Errorf("No output file specified."))
		return
	}

	withExt := datafile.EnsureExt(outPath)
	if withExt != outPath {
		fmt.Printf("📝 Added .txt extension: %s\n", withExt)
	}

	if err := datafile.WriteLines(formatted, withExt); err != nil {
		fmt.Println(ui.Errorf(fmt.Sprintf("Error saving output: %v", err)))
		return
	}

	utils.Info("Output saved", "path", withExt, "lines", len(formatted))
	fmt.Println(ui.Success(fmt.Sprintf("SUCCESS! All %d formatted lines saved to: %s", len(formatted), withExt)))
}

// readInput спрашивает путь, читает файл и показывает превью.
// Второй результат false = операция прервана (ошибка уже напечатана).
func (a *app) readInput(ctx context.Context) ([]string, bool) {
	path := a.ask("\nEnter the path to your input file (txt or csv): ")
	if path == "" {
		fmt.Println(ui.Errorf("No input file specified."))
		return nil, false
	}

	fmt.Println("📖 Reading data...")
	lines, err := a.reader.ReadLines(ctx, path)
	if err != nil {
		fmt.Println(ui.Errorf(err.Error()))
		utils.Warn("Read failed", "path", path, "error", err)
		return nil, false
	}
	if len(lines) == 0 {
		fmt.Println(ui.Errorf("No data found in file."))
		return nil, false
	}

	fmt.Println(ui.Success(fmt.Sprintf("Read %d lines from file.", len(lines))))
	fmt.Printf("\n📋 Sample data (first %d lines):\n", a.cfg.App.SamplePreview)
	fmt.Print(ui.Preview(lines, a.cfg.App.SamplePreview))

	a.lastInput = path
	return lines, true
}

// record пишет подсказку в журнал, если он настроен.
func (a *app) record(sug pattern.Suggestion, hint string) {
	if a.store == nil {
		return
	}

	err := a.store.Save(history.Entry{
		InputFile: a.lastInput,
		Format:    hint,
		Pattern:   sug.Pattern,
		Source:    string(sug.Source),
	})
	if err != nil {
		utils.Warn("History save failed", "error", err)
	}
}
