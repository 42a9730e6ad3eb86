package dto

import (
	"time"

	"wikiquiz/internal/domain"
)

// GenerateQuizRequest is the request body for quiz generation
// @Description Request to generate a quiz from a Wikipedia article URL
type GenerateQuizRequest struct {
	URL string `json:"url"`
}

// QuizResponse is the full quiz view returned after generation or retrieval
// @Description Complete quiz with article overview, questions, and related topics
type QuizResponse struct {
	ID              string                  `json:"id"`
	WikipediaURL    string                  `json:"wikipedia_url"`
	ArticleTitle    string                  `json:"article_title"`
	ArticleSummary  string                  `json:"article_summary"`
	ArticleImageURL string                  `json:"article_image_url,omitempty"`
	Sections        []domain.ArticleSection `json:"sections"`
	QuizData        []domain.QuizQuestion   `json:"quiz_data"`
	RelatedTopics   []domain.RelatedTopic   `json:"related_topics"`
	CreatedAt       time.Time               `json:"created_at"`
}

// QuizHistoryItem is a single entry in the generation history
type QuizHistoryItem struct {
	ID           string    `json:"id"`
	ArticleTitle string    `json:"article_title"`
	WikipediaURL string    `json:"wikipedia_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuizHistoryResponse is the paginated history view
// @Description Paginated list of previously generated quizzes
type QuizHistoryResponse struct {
	Total   int               `json:"total"`
	Quizzes []QuizHistoryItem `json:"quizzes"`
}

// ToQuizResponse formats a persisted quiz into its response view.
func ToQuizResponse(quiz *domain.Quiz) *QuizResponse {
	sections := quiz.Sections
	if sections == nil {
		sections = []domain.ArticleSection{}
	}
	questions := quiz.Questions
	if questions == nil {
		questions = []domain.QuizQuestion{}
	}
	topics := quiz.RelatedTopics
	if topics == nil {
		topics = []domain.RelatedTopic{}
	}
	return &QuizResponse{
		ID:              quiz.ID,
		WikipediaURL:    quiz.WikipediaURL,
		ArticleTitle:    quiz.ArticleTitle,
		ArticleSummary:  quiz.ArticleSummary,
		ArticleImageURL: quiz.ArticleImageURL,
		Sections:        sections,
		QuizData:        questions,
		RelatedTopics:   topics,
		CreatedAt:       quiz.CreatedAt,
	}
}
