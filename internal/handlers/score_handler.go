package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/services"
)

type ScoreHandler struct {
	uploads   services.UploadReader
	extractor services.TextExtractor
	matcher   services.MatchService
}

func NewScoreHandler(
	uploads services.UploadReader,
	extractor services.TextExtractor,
	matcher services.MatchService,
) *ScoreHandler {
	return &ScoreHandler{
		uploads:   uploads,
		extractor: extractor,
		matcher:   matcher,
	}
}

// HandleScore handles POST /score
func (h *ScoreHandler) HandleScore(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	_, fileErr := c.FormFile("resume")

	if fileErr != nil || strings.TrimSpace(jobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a resume and enter a job description before clicking submit.",
		})
	}

	doc, resumeText, err := readResume(c, h.uploads, h.extractor)
	if err != nil {
		return uploadError(c, err)
	}

	logger.Info("📄 Scoring resume",
		zap.String("filename", doc.Filename),
		zap.String("media_type", string(doc.MediaType)),
		zap.Int("resume_chars", len(resumeText)),
	)

	result, err := h.matcher.Match(c.UserContext(), resumeText, jobDescription)
	if err != nil {
		logger.Error("❌ Scoring failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to score resume. Please try again.",
		})
	}

	return c.JSON(result)
}
