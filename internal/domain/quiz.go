package domain

import (
	"time"
)

// Difficulty levels a generated question may carry.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// QuestionOption is a single labeled choice of a multiple-choice question.
type QuestionOption struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuizQuestion is one generated multiple-choice question. Instances are only
// constructed from generator output that has passed response validation.
type QuizQuestion struct {
	ID            int              `json:"id"`
	Question      string           `json:"question"`
	Topic         string           `json:"topic"`
	Difficulty    string           `json:"difficulty"`
	Options       []QuestionOption `json:"options"`
	CorrectAnswer string           `json:"correct_answer"`
	Explanation   string           `json:"explanation"`
}

// ArticleSection is a titled block of article text.
type ArticleSection struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

// RelatedTopic is a pointer to another Wikipedia article, sourced from the
// "See also" region of the scraped page. Summary and ImageURL stay unset at
// extraction time.
type RelatedTopic struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Summary  string `json:"summary,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Article is the structured record produced by the extractor. It is ephemeral:
// the orchestrator consumes it and persists a Quiz, never the Article itself.
//
// Invariants: Sections holds at most 5 entries, Summary is capped at 1000
// characters, and every URL is absolute.
type Article struct {
	Title         string
	Summary       string
	ImageURL      string
	Sections      []ArticleSection
	RelatedTopics []RelatedTopic
	Infobox       map[string]string
}

// Quiz is the persisted result of one successful generation run. Records are
// immutable after creation; UpdatedAt exists structurally but no code path
// revises a stored quiz.
type Quiz struct {
	ID              string
	WikipediaURL    string
	ArticleTitle    string
	ArticleSummary  string
	ArticleImageURL string
	Sections        []ArticleSection
	Questions       []QuizQuestion
	RelatedTopics   []RelatedTopic
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewQuiz assembles a Quiz from an extracted article and its validated
// question set. The caller supplies the identity.
func NewQuiz(id, url string, article *Article, questions []QuizQuestion) *Quiz {
	now := time.Now()
	return &Quiz{
		ID:              id,
		WikipediaURL:    url,
		ArticleTitle:    article.Title,
		ArticleSummary:  article.Summary,
		ArticleImageURL: article.ImageURL,
		Sections:        article.Sections,
		Questions:       questions,
		RelatedTopics:   article.RelatedTopics,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Validate checks the structural invariants of a quiz before persistence.
func (q *Quiz) Validate() error {
	if q.ID == "" {
		return NewValidationError("quiz id is required")
	}
	if q.WikipediaURL == "" {
		return NewValidationError("wikipedia url is required")
	}
	if q.ArticleTitle == "" {
		return NewValidationError("article title is required")
	}
	if len(q.Questions) == 0 {
		return NewValidationError("quiz must contain at least one question")
	}
	return nil
}
