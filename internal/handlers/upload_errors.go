package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/metrics"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/services"
)

const extractionWarning = "Could not extract text from the file. Please upload a valid PDF or DOCX."

var errMissingResume = errors.New("missing resume upload")

// readResume pulls the "resume" form file and extracts its text. Errors are
// rendered with uploadError.
func readResume(c *fiber.Ctx, uploads services.UploadReader, extractor services.TextExtractor) (*models.Document, string, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return nil, "", errMissingResume
	}

	doc, err := uploads.ReadUpload(file)
	if err != nil {
		return nil, "", err
	}

	text, err := extractor.Extract(doc)
	if err != nil {
		metrics.ExtractionFailures.WithLabelValues(string(doc.MediaType)).Inc()
		logger.Warn("⚠️ Text extraction failed",
			zap.String("filename", doc.Filename),
			zap.String("media_type", string(doc.MediaType)),
			zap.Error(err),
		)
		return nil, "", err
	}

	return doc, text, nil
}

func uploadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errMissingResume):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a resume (PDF or DOCX).",
		})
	case errors.Is(err, services.ErrFileTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrUnsupportedMediaType):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"error": "Unsupported file type. Please upload a PDF or DOCX.",
		})
	case errors.Is(err, services.ErrNoTextContent), errors.Is(err, services.ErrExtractionFailed):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": extractionWarning,
		})
	default:
		logger.Error("❌ Failed to read upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
}
