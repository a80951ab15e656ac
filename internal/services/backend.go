package services

import (
	"context"
	"fmt"

	"alfredoptarigan/resume-screener/internal/config"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// NewLLMBackend builds the generator/encoder pair selected by LLM_PROVIDER.
func NewLLMBackend(ctx context.Context, cfg *config.Config) (LLMBackend, error) {
	switch cfg.LLM.Provider {
	case ProviderGemini:
		return NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.EmbedModel)
	case ProviderOpenAI:
		return NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.EmbedModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
