package services

import (
	"context"
	"unicode/utf8"
)

// maxEmbedInput keeps embedding requests under the model's token limit.
const maxEmbedInput = 40000

// TextGenerator is the hosted language model used for structuring,
// suggestions and chat.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Encoder maps text to a fixed-length embedding vector.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

// LLMBackend is a provider that serves both generation and embeddings.
type LLMBackend interface {
	TextGenerator
	Encoder
}

// truncateUTF8 cuts text to at most maxBytes without splitting a rune.
func truncateUTF8(text string, maxBytes int) string {
	if len(text) <= maxBytes {
		return text
	}

	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
