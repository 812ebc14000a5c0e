package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 15000, cfg.Tasks[TaskHoroscope].TimeoutMs)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("ASTROPLAN_LLM_TIMEOUT_MS", "9000")
	t.Setenv("ASTROPLAN_LLM_HOROSCOPE_TIMEOUT_MS", "20000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskHoroscope))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("ASTROPLAN_LLM_HOROSCOPE_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 15000, cfg.TaskTimeout(TaskHoroscope))
}

func TestLoadConfig_EnableAndModelOverride(t *testing.T) {
	t.Setenv("ASTROPLAN_LLM_ENABLED", "true")
	t.Setenv("ASTROPLAN_LLM_MODEL", "mistral")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "mistral", cfg.Model)
}
