package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStructurePrompt(t *testing.T) {
	prompt := NewPromptBuilder().BuildStructurePrompt("Go developer, 5 years")

	for _, category := range []string{"Tech Stack", "Experience", "Skills", "Education", "Certifications", "Responsibilities"} {
		assert.Contains(t, prompt, category)
	}
	assert.Contains(t, prompt, `"Not specified"`)
	assert.Contains(t, prompt, "Go developer, 5 years")
}

func TestBuildSuggestionPrompt(t *testing.T) {
	prompt := NewPromptBuilder().BuildSuggestionPrompt("RESUME BODY", "JOB BODY")

	assert.Contains(t, prompt, "Resume Text:\nRESUME BODY")
	assert.Contains(t, prompt, "Job Description:\nJOB BODY")
	assert.Less(t, strings.Index(prompt, "RESUME BODY"), strings.Index(prompt, "JOB BODY"))
}

func TestBuildChatPrompt(t *testing.T) {
	prompt := NewPromptBuilder().BuildChatPrompt("RESUME BODY", "Where did she study?")

	assert.Contains(t, prompt, "Resume Text:\nRESUME BODY")
	assert.Contains(t, prompt, "Question:\nWhere did she study?")
}
