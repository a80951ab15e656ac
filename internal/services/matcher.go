package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/metrics"
	"alfredoptarigan/resume-screener/internal/models"
)

const (
	FallbackSuggestions = "No suggestions available."
	FallbackChatAnswer  = "Sorry, I couldn't generate a response. Please try again."
)

type MatchService interface {
	Match(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, error)
	Ask(ctx context.Context, resumeText, question string) (answer string, warning string)
}

type matchService struct {
	generator     TextGenerator
	scorer        SimilarityScorer
	promptBuilder *PromptBuilder
}

func NewMatchService(generator TextGenerator, scorer SimilarityScorer) MatchService {
	return &matchService{
		generator:     generator,
		scorer:        scorer,
		promptBuilder: NewPromptBuilder(),
	}
}

// Match runs one scoring request. Generation failures degrade to fallback
// text and are reported in Warnings; only a scoring failure is returned.
func (m *matchService) Match(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, error) {
	start := time.Now()
	defer func() {
		metrics.PipelineDuration.WithLabelValues("score").Observe(time.Since(start).Seconds())
	}()

	result := &models.MatchResult{}

	logger.Info("🤖 Structuring resume...", zap.Int("chars", len(resumeText)))
	resumeStructured, warning := m.generate(ctx, "structure_resume",
		m.promptBuilder.BuildStructurePrompt(resumeText), FallbackSuggestions)
	result.AddWarning(warning)

	logger.Info("🤖 Structuring job description...", zap.Int("chars", len(jobDescription)))
	jobStructured, warning := m.generate(ctx, "structure_job_description",
		m.promptBuilder.BuildStructurePrompt(jobDescription), FallbackSuggestions)
	result.AddWarning(warning)

	logger.Info("💡 Generating suggestions...")
	suggestions, warning := m.generate(ctx, "suggestions",
		m.promptBuilder.BuildSuggestionPrompt(resumeText, jobDescription), FallbackSuggestions)
	result.AddWarning(warning)

	score, err := m.scorer.Score(ctx, resumeStructured, jobStructured)
	if err != nil {
		return nil, fmt.Errorf("failed to compute similarity: %w", err)
	}

	result.Score = score
	result.ProfileStrength = ClassifyProfile(score)
	result.ResumeStructured = resumeStructured
	result.JobDescriptionStructured = jobStructured
	result.Suggestions = suggestions

	metrics.MatchScore.Observe(score)
	metrics.ProfileStrengthTotal.WithLabelValues(result.ProfileStrength.Label).Inc()

	logger.Info("✅ Resume scored",
		zap.Float64("score", score),
		zap.String("profile", result.ProfileStrength.Label),
		zap.Int("warnings", len(result.Warnings)),
	)

	return result, nil
}

// Ask answers a question about the resume. On failure the fixed apology is
// returned as the answer along with a warning for the caller to surface.
func (m *matchService) Ask(ctx context.Context, resumeText, question string) (string, string) {
	start := time.Now()
	defer func() {
		metrics.PipelineDuration.WithLabelValues("chat").Observe(time.Since(start).Seconds())
	}()

	return m.generate(ctx, "chat", m.promptBuilder.BuildChatPrompt(resumeText, question), FallbackChatAnswer)
}

func (m *matchService) generate(ctx context.Context, operation, prompt, fallback string) (string, string) {
	text, err := m.generator.GenerateText(ctx, prompt)
	if err == nil {
		text = strings.TrimSpace(text)
		if text != "" {
			return text, ""
		}
		err = fmt.Errorf("empty response")
	}

	logger.Warn("⚠️ Text generation failed, using fallback",
		zap.String("operation", operation),
		zap.Error(err),
	)
	metrics.GenerationFailures.WithLabelValues(operation).Inc()

	return fallback, fmt.Sprintf("Error communicating with the AI model (%s): %v", operation, err)
}
