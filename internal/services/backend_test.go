package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/config"
)

func TestNewLLMBackend(t *testing.T) {
	cfg := &config.Config{
		LLM:    config.LLMConfig{Provider: ProviderOpenAI},
		OpenAI: config.OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", EmbedModel: "text-embedding-3-small"},
	}

	backend, err := NewLLMBackend(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &openAIService{}, backend)

	cfg.LLM.Provider = "llama"
	_, err = NewLLMBackend(context.Background(), cfg)
	assert.Error(t, err)
}
