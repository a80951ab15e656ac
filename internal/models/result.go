package models

type ProfileStrength struct {
	Label string `json:"label"`
	Badge string `json:"badge"`
	Icon  string `json:"icon"`
}

type MatchResult struct {
	Score                    float64         `json:"score"`
	ProfileStrength          ProfileStrength `json:"profile_strength"`
	ResumeStructured         string          `json:"resume_structured"`
	JobDescriptionStructured string          `json:"job_description_structured"`
	Suggestions              string          `json:"suggestions"`
	Warnings                 []string        `json:"warnings,omitempty"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

type SignupResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Warning  string `json:"warning,omitempty"`
}

type ResumeUploadResponse struct {
	Filename   string `json:"filename"`
	MediaType  string `json:"media_type"`
	Characters int    `json:"characters"`
	Preview    string `json:"preview"`
}

type ChatHistoryResponse struct {
	Turns []ChatTurn `json:"turns"`
}

func (r *MatchResult) AddWarning(warning string) {
	if warning != "" {
		r.Warnings = append(r.Warnings, warning)
	}
}
