// @title Wiki Quiz API
// @version 1.0
// @description API for generating multiple-choice quizzes from Wikipedia articles using an LLM.
// @host localhost:8080
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"wikiquiz/internal/config"
	"wikiquiz/internal/database"
	"wikiquiz/internal/handler"
	"wikiquiz/internal/llm"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/middleware"
	"wikiquiz/internal/repository"
	"wikiquiz/internal/service"
	"wikiquiz/internal/wiki"

	_ "wikiquiz/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Postgres")

	// Dependencies are constructed once here and passed in by interface, so
	// tests can substitute doubles for each of them.
	quizRepository := repository.NewQuizDatabaseAdapter(db)

	extractor := wiki.NewExtractor(cfg.Wiki, cfg.Quiz.RelatedTopicLimit)
	appLogger.Info("Article extractor initialized",
		zap.String("base_url", cfg.Wiki.BaseURL),
		zap.Duration("request_timeout", cfg.Wiki.RequestTimeout),
	)

	generator, err := llm.NewGenerator(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create generation backend", zap.Error(err))
	}

	quizService := service.NewQuizService(extractor, generator, quizRepository, cfg)
	quizHandler := handler.NewQuizHandler(quizService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Wiki Quiz API is running"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	apiGroup := app.Group("/api")
	quizGroup := apiGroup.Group("/quiz")
	quizGroup.Post("/generate", quizHandler.GenerateQuiz)
	quizGroup.Get("/history", quizHandler.GetQuizHistory)
	quizGroup.Get("/:id", quizHandler.GetQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
