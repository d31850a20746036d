package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYaml = `
models:
  default_chat: test-model
  definitions:
    test-model:
      provider: openai
      model_name: gpt-4o-mini
      api_key: ${PATTERN_AI_TEST_KEY}
      temperature: 0.1
      max_tokens: 150
      timeout: 30s
      rate_limit: 60
      burst_limit: 3

history:
  path: history.db

app:
  debug: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("PATTERN_AI_TEST_KEY", "sk-test-123")

	cfg, err := Load(writeConfig(t, testYaml))
	require.NoError(t, err)

	def, ok := cfg.GetChatModel("")
	require.True(t, ok, "default model must resolve")

	assert.Equal(t, "openai", def.Provider)
	assert.Equal(t, "gpt-4o-mini", def.ModelName)
	assert.Equal(t, "sk-test-123", def.APIKey, "env var must be expanded")
	assert.Equal(t, 0.1, def.Temperature)
	assert.Equal(t, 150, def.MaxTokens)
	assert.Equal(t, 30*time.Second, def.Timeout)
	assert.Equal(t, 60, def.RateLimit)

	assert.Equal(t, "history.db", cfg.History.Path)
	assert.True(t, cfg.App.Debug)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "app:\n  debug: false\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.App.SamplePreview)
	assert.Equal(t, "prompts", cfg.App.PromptsDir)
	assert.Equal(t, 20, cfg.History.Limit)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_UndefinedDefaultModel(t *testing.T) {
	broken := `
models:
  default_chat: ghost
  definitions: {}
`
	_, err := Load(writeConfig(t, broken))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestLoad_S3RequiresBucket(t *testing.T) {
	broken := `
s3:
  endpoint: storage.example.com
`
	_, err := Load(writeConfig(t, broken))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3.bucket")
}

func TestGetChatModel_ByName(t *testing.T) {
	t.Setenv("PATTERN_AI_TEST_KEY", "x")
	cfg, err := Load(writeConfig(t, testYaml))
	require.NoError(t, err)

	_, ok := cfg.GetChatModel("test-model")
	assert.True(t, ok)

	_, ok = cfg.GetChatModel("unknown")
	assert.False(t, ok)
}
