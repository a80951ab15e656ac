package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/services"
)

const (
	sessionLocalKey = "session"
	tokenLocalKey   = "session_token"
)

// RequireSession rejects requests without a live session and hands the
// session to the next handler through c.Locals.
func RequireSession(identity services.IdentityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))

		session, err := identity.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, services.ErrUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Please log in to continue",
				})
			}
			logger.Error("❌ Session lookup failed", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load session")
		}

		c.Locals(sessionLocalKey, session)
		c.Locals(tokenLocalKey, token)
		return c.Next()
	}
}

func currentSession(c *fiber.Ctx) *models.Session {
	session, _ := c.Locals(sessionLocalKey).(*models.Session)
	return session
}

func currentToken(c *fiber.Ctx) string {
	token, _ := c.Locals(tokenLocalKey).(string)
	return token
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// ErrorHandler renders unhandled errors as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
