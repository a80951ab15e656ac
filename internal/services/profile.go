package services

import "alfredoptarigan/resume-screener/internal/models"

const (
	ProfileStrong = "Strong Profile"
	ProfileApply  = "You Can Apply"
	ProfileWeak   = "Weak Profile"

	strongThreshold = 75.0
	applyThreshold  = 50.0
)

// ClassifyProfile maps a similarity percentage to a profile strength. Each
// band includes its lower bound.
func ClassifyProfile(score float64) models.ProfileStrength {
	switch {
	case score >= strongThreshold:
		return models.ProfileStrength{Label: ProfileStrong, Badge: "badge-success", Icon: "✅"}
	case score >= applyThreshold:
		return models.ProfileStrength{Label: ProfileApply, Badge: "badge-warning", Icon: "⚠️"}
	default:
		return models.ProfileStrength{Label: ProfileWeak, Badge: "badge-danger", Icon: "❌"}
	}
}
