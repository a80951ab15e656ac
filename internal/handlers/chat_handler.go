package handlers

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/services"
)

const previewChars = 500

type ChatHandler struct {
	uploads   services.UploadReader
	extractor services.TextExtractor
	matcher   services.MatchService
	sessions  services.SessionStore
}

func NewChatHandler(
	uploads services.UploadReader,
	extractor services.TextExtractor,
	matcher services.MatchService,
	sessions services.SessionStore,
) *ChatHandler {
	return &ChatHandler{
		uploads:   uploads,
		extractor: extractor,
		matcher:   matcher,
		sessions:  sessions,
	}
}

// HandleUploadResume handles POST /chat/resume
func (h *ChatHandler) HandleUploadResume(c *fiber.Ctx) error {
	session := currentSession(c)

	doc, text, err := readResume(c, h.uploads, h.extractor)
	if err != nil {
		return uploadError(c, err)
	}

	if err := h.sessions.SetResume(c.UserContext(), session.ID, text); err != nil {
		return sessionError(c, session.ID, err, "Failed to store resume")
	}

	logger.Info("📄 Resume loaded for chat",
		zap.String("session_id", session.ID),
		zap.String("filename", doc.Filename),
		zap.Int("chars", len(text)),
	)

	return c.JSON(models.ResumeUploadResponse{
		Filename:   doc.Filename,
		MediaType:  string(doc.MediaType),
		Characters: utf8.RuneCountInString(text),
		Preview:    preview(text, previewChars),
	})
}

// HandleAsk handles POST /chat/ask
func (h *ChatHandler) HandleAsk(c *fiber.Ctx) error {
	session := currentSession(c)

	var req models.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	req.Question = strings.TrimSpace(req.Question)
	if err := validateRequest(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter a question.",
		})
	}

	if session.ResumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a resume first.",
		})
	}

	answer, warning := h.matcher.Ask(c.UserContext(), session.ResumeText, req.Question)

	turn := models.NewChatTurn(req.Question, answer)
	if err := h.sessions.AppendTurn(c.UserContext(), session.ID, turn); err != nil {
		return sessionError(c, session.ID, err, "Failed to store chat history")
	}

	return c.JSON(models.AskResponse{
		Question: req.Question,
		Answer:   answer,
		Warning:  warning,
	})
}

// HandleHistory handles GET /chat/history
func (h *ChatHandler) HandleHistory(c *fiber.Ctx) error {
	session := currentSession(c)

	turns := session.ChatHistory
	if turns == nil {
		turns = []models.ChatTurn{}
	}

	return c.JSON(models.ChatHistoryResponse{
		Turns: turns,
	})
}

// HandleDeleteHistory handles DELETE /chat/history
func (h *ChatHandler) HandleDeleteHistory(c *fiber.Ctx) error {
	session := currentSession(c)

	if err := h.sessions.ClearChat(c.UserContext(), session.ID); err != nil {
		return sessionError(c, session.ID, err, "Failed to clear chat history")
	}

	logger.Info("🗑️ Chat history cleared", zap.String("session_id", session.ID))

	return c.JSON(fiber.Map{
		"message": "Chat history cleared",
	})
}

// sessionError renders a failed session write. A session that vanished
// mid-request (logout, expiry) is reported as signed out.
func sessionError(c *fiber.Ctx, sessionID string, err error, message string) error {
	if errors.Is(err, services.ErrSessionNotFound) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Please log in to continue",
		})
	}

	logger.Error("❌ Failed to update session", zap.String("session_id", sessionID), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
