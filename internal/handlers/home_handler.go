package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type view struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Endpoints   []string `json:"endpoints"`
}

var views = []view{
	{
		Name:        "Home",
		Description: "Welcome to the AI Resume Screening System.",
		Endpoints:   []string{"GET /"},
	},
	{
		Name:        "Resume Scoring",
		Description: "Upload a resume and a job description to get a match score, a profile strength verdict and tailored suggestions.",
		Endpoints:   []string{"POST /api/v1/score"},
	},
	{
		Name:        "AI Resume Chatbot",
		Description: "Upload a resume and ask questions about it.",
		Endpoints: []string{
			"POST /api/v1/chat/resume",
			"POST /api/v1/chat/ask",
			"GET /api/v1/chat/history",
			"DELETE /api/v1/chat/history",
		},
	},
}

// HandleHome handles GET /
func HandleHome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "AI Resume Screening System",
		"version": "1.0.0",
		"views":   views,
		"auth": []string{
			"POST /api/v1/auth/signup",
			"POST /api/v1/auth/login",
			"POST /api/v1/auth/logout",
		},
	})
}

// HandleHealth handles GET /health
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}
