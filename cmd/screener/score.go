package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	scoreResume string
	scoreJD     string
	scoreJDText string
	scoreAsJSON bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long: `Extracts the resume text, structures both documents with the LLM,
embeds them and prints the match score, profile strength and suggestions.

Examples:
  # Job description from a text file
  screener score --resume cv.pdf --jd job.txt

  # Inline job description, JSON output
  screener score --resume cv.docx --jd-text "Senior Go engineer..." --json`,
	RunE: runScore,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreResume, "resume", "", "Path to the resume (PDF or DOCX)")
	scoreCmd.Flags().StringVar(&scoreJD, "jd", "", "Path to a plain-text job description")
	scoreCmd.Flags().StringVar(&scoreJDText, "jd-text", "", "Job description text")
	scoreCmd.Flags().BoolVar(&scoreAsJSON, "json", false, "Print the result as JSON")
	_ = scoreCmd.MarkFlagRequired("resume")
	scoreCmd.MarkFlagsMutuallyExclusive("jd", "jd-text")
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	jobDescription, err := readJobDescription()
	if err != nil {
		return err
	}

	p, err := newPipeline(ctx)
	if err != nil {
		return err
	}

	resumeText, err := p.readResume(scoreResume)
	if err != nil {
		return err
	}

	result, err := p.matcher.Match(ctx, resumeText, jobDescription)
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}

	out := cmd.OutOrStdout()

	if scoreAsJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠️ %s\n", warning)
	}

	fmt.Fprintf(out, "Match Score: %.2f%%\n", result.Score)
	fmt.Fprintf(out, "Profile Strength: %s %s\n\n", result.ProfileStrength.Icon, result.ProfileStrength.Label)
	fmt.Fprintf(out, "Resume:\n%s\n\n", result.ResumeStructured)
	fmt.Fprintf(out, "Job Description:\n%s\n\n", result.JobDescriptionStructured)
	fmt.Fprintf(out, "Suggestions:\n%s\n", result.Suggestions)

	return nil
}

func readJobDescription() (string, error) {
	text := scoreJDText
	if scoreJD != "" {
		data, err := os.ReadFile(scoreJD)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return "", errors.New("a job description is required (--jd or --jd-text)")
	}

	return text, nil
}
