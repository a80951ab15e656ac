package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var askResume string

//nolint:gochecknoglobals // Cobra boilerplate
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about a resume",
	Long: `Answers a free-form question using only the resume text as context.

Example:
  screener ask --resume cv.pdf "What are the candidate's strongest skills?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVar(&askResume, "resume", "", "Path to the resume (PDF or DOCX)")
	_ = askCmd.MarkFlagRequired("resume")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("question must not be empty")
	}

	p, err := newPipeline(ctx)
	if err != nil {
		return err
	}

	resumeText, err := p.readResume(askResume)
	if err != nil {
		return err
	}

	answer, warning := p.matcher.Ask(ctx, resumeText, question)
	if warning != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠️ %s\n", warning)
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
