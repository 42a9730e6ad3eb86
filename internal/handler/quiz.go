package handler

import (
	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 100
)

// QuizHandler handles quiz-related HTTP requests. Errors are returned to the
// centralized error middleware, which owns the code-to-status mapping.
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from a Wikipedia article
// @Description Scrapes the article, generates multiple-choice questions and stores the result
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Wikipedia article URL"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if req.URL == "" {
		return domain.NewValidationError("url is required")
	}

	logger.Get().Info("Quiz generation request", zap.String("url", req.URL))

	quiz, err := h.service.GenerateQuiz(c.Context(), req.URL)
	if err != nil {
		return err
	}

	logger.Get().Info("Successfully generated quiz", zap.String("quiz_id", quiz.ID))
	return c.JSON(quiz)
}

// GetQuizHistory godoc
// @Summary Get quiz generation history
// @Description Returns a paginated list of previously generated quizzes, most recent first
// @Tags quiz
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of quizzes to return (1-100)" default(50)
// @Param offset query int false "Number of quizzes to skip" default(0)
// @Success 200 {object} dto.QuizHistoryResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quiz/history [get]
func (h *QuizHandler) GetQuizHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	offset := c.QueryInt("offset", 0)

	// Bounds are enforced before the pipeline is ever invoked
	if limit < 1 || limit > maxHistoryLimit {
		return domain.NewValidationError("limit must be between 1 and 100")
	}
	if offset < 0 {
		return domain.NewValidationError("offset must be >= 0")
	}

	history, err := h.service.ListQuizzes(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(history)
}

// GetQuiz godoc
// @Summary Retrieve a quiz by ID
// @Description Returns the full quiz data for the given identifier
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return domain.NewValidationError("quiz id is required")
	}

	quiz, err := h.service.GetQuizByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}
