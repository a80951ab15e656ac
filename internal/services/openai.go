package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/logger"
)

type openAIService struct {
	client     *openai.Client
	model      string
	embedModel string
}

func NewOpenAIService(apiKey, model, embedModel string) LLMBackend {
	return newOpenAIServiceWithConfig(openai.DefaultConfig(apiKey), model, embedModel)
}

func newOpenAIServiceWithConfig(cfg openai.ClientConfig, model, embedModel string) LLMBackend {
	return &openAIService{
		client:     openai.NewClientWithConfig(cfg),
		model:      model,
		embedModel: embedModel,
	}
}

// GenerateText implements TextGenerator.
func (o *openAIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no text content in response")
	}

	logger.Debug("📊 OpenAI completion received",
		zap.String("model", o.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}

// Encode implements Encoder.
func (o *openAIService) Encode(ctx context.Context, text string) ([]float32, error) {
	text = truncateUTF8(text, maxEmbedInput)

	resp, err := o.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(o.embedModel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return resp.Data[0].Embedding, nil
}
