package service

import (
	"context"
	"fmt"
	"strings"

	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/llm"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Section content is re-truncated at persistence time, independent of the
// larger caps applied during extraction and prompting.
const storedSectionMaxChars = 500

// QuizService owns the end-to-end generation pipeline and the retrieval
// operations over stored quizzes.
type QuizService interface {
	GenerateQuiz(ctx context.Context, url string) (*dto.QuizResponse, error)
	GetQuizByID(ctx context.Context, id string) (*dto.QuizResponse, error)
	ListQuizzes(ctx context.Context, limit, offset int) (*dto.QuizHistoryResponse, error)
}

type quizService struct {
	extractor domain.ArticleExtractor
	generator domain.TextGenerator
	repo      domain.QuizRepository
	cfg       *config.Config
}

// NewQuizService creates a new quizService with its collaborators passed in
// explicitly, so tests can substitute doubles for any of them.
func NewQuizService(
	extractor domain.ArticleExtractor,
	generator domain.TextGenerator,
	repo domain.QuizRepository,
	cfg *config.Config,
) QuizService {
	return &quizService{
		extractor: extractor,
		generator: generator,
		repo:      repo,
		cfg:       cfg,
	}
}

// GenerateQuiz runs the whole pipeline for one URL: extract, prompt,
// generate, parse, persist, format. Each stage's output feeds the next, so
// the stages run strictly in order; extraction and generation failures
// propagate with their own error kinds, anything else is internal.
func (s *quizService) GenerateQuiz(ctx context.Context, url string) (*dto.QuizResponse, error) {
	article, err := s.extractor.Extract(ctx, url)
	if err != nil {
		return nil, err
	}

	combined := combineContent(article)

	// Some pages have no usable lead paragraphs; let the backend write the
	// summary from the section text instead. Best-effort: a failed summary
	// never fails the run.
	if article.Summary == "" && combined != "" {
		summary, err := s.generator.Generate(ctx, llm.BuildSummaryPrompt(combined, article.Title))
		if err != nil {
			logger.Get().Warn("Article summary generation failed",
				zap.String("article_title", article.Title),
				zap.Error(err),
			)
		} else {
			article.Summary = strings.TrimSpace(summary)
		}
	}

	prompt := llm.BuildQuizPrompt(combined, article.Title, s.cfg.Quiz.NumQuestions)

	logger.Get().Info("Generating quiz questions",
		zap.String("article_title", article.Title),
		zap.Int("num_questions", s.cfg.Quiz.NumQuestions),
	)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, domain.NewGenerationError(err)
	}

	questions, err := llm.ParseQuestions(raw)
	if err != nil {
		return nil, err
	}
	if len(questions) != s.cfg.Quiz.NumQuestions {
		logger.Get().Warn("Generator returned a different question count than requested",
			zap.Int("requested", s.cfg.Quiz.NumQuestions),
			zap.Int("returned", len(questions)),
		)
	}

	quiz := domain.NewQuiz(util.NewULID(), url, article, questions)
	quiz.Sections = truncateSections(article.Sections)

	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	logger.Get().Info("Quiz generated",
		zap.String("quiz_id", quiz.ID),
		zap.String("article_title", quiz.ArticleTitle),
		zap.Int("questions", len(quiz.Questions)),
	)
	return dto.ToQuizResponse(quiz), nil
}

// GetQuizByID returns a stored quiz or a QUIZ_NOT_FOUND error. Absence is an
// explicit error kind, never inferred from message text.
func (s *quizService) GetQuizByID(ctx context.Context, id string) (*dto.QuizResponse, error) {
	quiz, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}
	return dto.ToQuizResponse(quiz), nil
}

// ListQuizzes returns the generation history, most recent first. The total
// and the page are independent read-only queries, so they run concurrently.
func (s *quizService) ListQuizzes(ctx context.Context, limit, offset int) (*dto.QuizHistoryResponse, error) {
	if limit < 1 || limit > 100 {
		return nil, domain.NewValidationError("limit must be between 1 and 100")
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset must be >= 0")
	}

	var (
		total   int
		quizzes []*domain.Quiz
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		quizzes, err = s.repo.ListOrderedByCreatedDesc(gctx, offset, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	items := make([]dto.QuizHistoryItem, 0, len(quizzes))
	for _, quiz := range quizzes {
		items = append(items, dto.QuizHistoryItem{
			ID:           quiz.ID,
			ArticleTitle: quiz.ArticleTitle,
			WikipediaURL: quiz.WikipediaURL,
			CreatedAt:    quiz.CreatedAt,
		})
	}

	return &dto.QuizHistoryResponse{
		Total:   total,
		Quizzes: items,
	}, nil
}

// combineContent concatenates the article summary and every section body
// into the single text the quiz prompt is built from.
func combineContent(article *domain.Article) string {
	parts := make([]string, 0, len(article.Sections)+1)
	parts = append(parts, article.Summary)
	for _, section := range article.Sections {
		parts = append(parts, fmt.Sprintf("%s: %s", section.Title, section.Content))
	}
	return strings.Join(parts, "\n\n")
}

func truncateSections(sections []domain.ArticleSection) []domain.ArticleSection {
	truncated := make([]domain.ArticleSection, len(sections))
	for i, section := range sections {
		truncated[i] = domain.ArticleSection{
			Title:   section.Title,
			Content: util.Truncate(section.Content, storedSectionMaxChars),
		}
	}
	return truncated
}
