package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const quizColumns = `id, wikipedia_url, article_title, article_summary,
	article_image_url, sections, quiz_data, related_topics, created_at, updated_at`

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// Insert implements domain.QuizRepository
func (a *QuizDatabaseAdapter) Insert(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot insert nil quiz")
	}
	model := toModelQuiz(quiz)

	query := `INSERT INTO quizzes (
		id, wikipedia_url, article_title, article_summary,
		article_image_url, sections, quiz_data, related_topics,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := a.db.ExecContext(ctx, query,
		model.ID,
		model.WikipediaURL,
		model.ArticleTitle,
		model.ArticleSummary,
		model.ArticleImageURL,
		model.Sections,
		model.QuizData,
		model.RelatedTopics,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quiz: %w", err)
	}
	return nil
}

// GetByID implements domain.QuizRepository. A missing record is (nil, nil);
// translating absence into a domain error is the service's job.
func (a *QuizDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var model models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1`

	err := a.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainQuiz(&model), nil
}

// Count implements domain.QuizRepository
func (a *QuizDatabaseAdapter) Count(ctx context.Context) (int, error) {
	var total int
	if err := a.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM quizzes`); err != nil {
		return 0, fmt.Errorf("failed to count quizzes: %w", err)
	}
	return total, nil
}

// ListOrderedByCreatedDesc implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListOrderedByCreatedDesc(ctx context.Context, offset, limit int) ([]*domain.Quiz, error) {
	var modelQuizzes []models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes
	ORDER BY created_at DESC
	OFFSET $1 LIMIT $2`

	if err := a.db.SelectContext(ctx, &modelQuizzes, query, offset, limit); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quizzes = append(quizzes, toDomainQuiz(&modelQuizzes[i]))
	}
	return quizzes, nil
}

func toModelQuiz(quiz *domain.Quiz) *models.Quiz {
	imageURL := sql.NullString{}
	if quiz.ArticleImageURL != "" {
		imageURL = sql.NullString{String: quiz.ArticleImageURL, Valid: true}
	}
	return &models.Quiz{
		ID:              quiz.ID,
		WikipediaURL:    quiz.WikipediaURL,
		ArticleTitle:    quiz.ArticleTitle,
		ArticleSummary:  quiz.ArticleSummary,
		ArticleImageURL: imageURL,
		Sections:        models.SectionList(quiz.Sections),
		QuizData:        models.QuestionList(quiz.Questions),
		RelatedTopics:   models.TopicList(quiz.RelatedTopics),
		CreatedAt:       quiz.CreatedAt,
		UpdatedAt:       quiz.UpdatedAt,
	}
}

func toDomainQuiz(model *models.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:              model.ID,
		WikipediaURL:    model.WikipediaURL,
		ArticleTitle:    model.ArticleTitle,
		ArticleSummary:  model.ArticleSummary,
		ArticleImageURL: model.ArticleImageURL.String,
		Sections:        []domain.ArticleSection(model.Sections),
		Questions:       []domain.QuizQuestion(model.QuizData),
		RelatedTopics:   []domain.RelatedTopic(model.RelatedTopics),
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
