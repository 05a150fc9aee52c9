package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears a variable for the test while keeping t.Setenv's cleanup,
// since defaults only apply to variables that are absent entirely.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "PORT")
	unsetenv(t, "ALLOWED_ORIGINS")
	unsetenv(t, "DEBUG")
	unsetenv(t, "ANTHROPIC_API_KEY")
	unsetenv(t, "OPENAI_API_KEY")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "https://sketchy.example,https://staging.sketchy.example")
	t.Setenv("DEBUG", "true")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"https://sketchy.example", "https://staging.sketchy.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "sk-ant-test", cfg.AnthropicAPIKey)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}
