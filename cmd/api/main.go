package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/handlers"
	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.EnvFileMissing() {
		logger.Warn("⚠️ No .env file found, using environment variables")
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("❌ Invalid configuration", zap.Error(err))
	}
	logger.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	ctx := context.Background()

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Fatal("❌ Failed to initialize database", zap.Error(err))
	}

	accountRepo := repositories.NewAccountRepository(db)
	logger.Info("✅ Repositories initialized successfully")

	// Initialize session store
	var sessionStore services.SessionStore
	switch cfg.Session.Backend {
	case "redis":
		redisClient, err := services.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("❌ Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessionStore = services.NewRedisSessionStore(redisClient, cfg.Session.TTL)
	default:
		sessionStore = services.NewMemorySessionStore(cfg.Session.TTL)
	}
	logger.Info("✅ Session store initialized", zap.String("backend", cfg.Session.Backend))

	// Initialize LLM backend
	backend, err := services.NewLLMBackend(ctx, cfg)
	if err != nil {
		logger.Fatal("❌ Failed to initialize LLM backend", zap.Error(err))
	}
	logger.Info("✅ LLM backend initialized", zap.String("provider", cfg.LLM.Provider))

	// Initialize services
	extractor := services.NewTextExtractor()
	uploadReader := services.NewUploadReader(cfg.Storage.MaxFileSize)
	scorer := services.NewSimilarityScorer(backend)
	matcher := services.NewMatchService(backend, scorer)
	identity := services.NewIdentityService(accountRepo, sessionStore)
	logger.Info("✅ Services initialized successfully")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Screening API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.SetupRoutes(app, handlers.Dependencies{
		Identity:  identity,
		Sessions:  sessionStore,
		Uploads:   uploadReader,
		Extractor: extractor,
		Matcher:   matcher,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		logger.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
