package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/metrics"
	"alfredoptarigan/resume-screener/internal/services"
)

// Dependencies bundles what the HTTP surface needs.
type Dependencies struct {
	Identity  services.IdentityService
	Sessions  services.SessionStore
	Uploads   services.UploadReader
	Extractor services.TextExtractor
	Matcher   services.MatchService
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	authHandler := NewAuthHandler(deps.Identity)
	scoreHandler := NewScoreHandler(deps.Uploads, deps.Extractor, deps.Matcher)
	chatHandler := NewChatHandler(deps.Uploads, deps.Extractor, deps.Matcher, deps.Sessions)
	requireSession := RequireSession(deps.Identity)

	app.Get("/", HandleHome)
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api/v1")
	api.Get("/health", HandleHealth)

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.HandleSignup)
	auth.Post("/login", authHandler.HandleLogin)
	auth.Post("/logout", requireSession, authHandler.HandleLogout)

	api.Post("/score", requireSession, scoreHandler.HandleScore)

	chat := api.Group("/chat", requireSession)
	chat.Post("/resume", chatHandler.HandleUploadResume)
	chat.Post("/ask", chatHandler.HandleAsk)
	chat.Get("/history", chatHandler.HandleHistory)
	chat.Delete("/history", chatHandler.HandleDeleteHistory)
}
