package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/services"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Score resumes against job descriptions from the command line",
	Long: `screener runs the resume screening pipeline without the HTTP server.

It reads the same environment (.env) as the API: LLM_PROVIDER selects
Gemini or OpenAI for both text generation and embeddings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		return logger.Init(level, "console")
	},
}

// Execute runs the root command.
func Execute() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

type pipeline struct {
	extractor services.TextExtractor
	matcher   services.MatchService
}

func newPipeline(ctx context.Context) (*pipeline, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	backend, err := services.NewLLMBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM backend: %w", err)
	}

	return &pipeline{
		extractor: services.NewTextExtractor(),
		matcher:   services.NewMatchService(backend, services.NewSimilarityScorer(backend)),
	}, nil
}

func (p *pipeline) readResume(path string) (string, error) {
	doc, err := services.DocumentFromFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}

	text, err := p.extractor.Extract(doc)
	if err != nil {
		return "", fmt.Errorf("failed to extract resume text: %w", err)
	}

	return text, nil
}
