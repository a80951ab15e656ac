package services

import "fmt"

// Inputs are interpolated verbatim. Resume and job description text is
// untrusted and can carry instructions of its own; nothing here guards
// against that.

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildStructurePrompt asks for the six resume/job categories from one text.
func (pb *PromptBuilder) BuildStructurePrompt(text string) string {
	return fmt.Sprintf(`Extract the following details from the text below and present them in a clear, structured format:

1. Tech Stack
2. Experience
3. Skills
4. Education
5. Certifications
6. Responsibilities

If a category is not mentioned in the text, write "Not specified" for it.

Text:
%s`, text)
}

// BuildSuggestionPrompt asks for gaps between a resume and a job description.
func (pb *PromptBuilder) BuildSuggestionPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Compare the resume below with the job description and suggest improvements to the resume.

Provide:
1. Missing skills or experience the job description asks for that the resume does not show
2. Improvements to the resume's clarity and structure
3. General tips to increase the candidate's chances for this role

Resume Text:
%s

Job Description:
%s`, resumeText, jobDescription)
}

// BuildChatPrompt asks the model to answer a question about a resume.
func (pb *PromptBuilder) BuildChatPrompt(resumeText, question string) string {
	return fmt.Sprintf(`Below is the resume text. Based on this resume, answer the following question:

Resume Text:
%s

Question:
%s`, resumeText, question)
}
