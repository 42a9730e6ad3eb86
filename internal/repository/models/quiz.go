package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"wikiquiz/internal/domain"
)

// jsonValue marshals v for storage in a JSON column. nil slices are stored as
// an empty JSON array rather than SQL NULL.
func jsonValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// jsonScan decodes a JSON column into dest, treating NULL, empty and the
// literal "null" as the zero value.
func jsonScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T for JSON scan", value)
	}

	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, dest)
}

// SectionList stores article sections as a JSON column
type SectionList []domain.ArticleSection

func (s SectionList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue(s)
}

func (s *SectionList) Scan(value interface{}) error {
	*s = SectionList{}
	return jsonScan(value, s)
}

// QuestionList stores quiz questions as a JSON column
type QuestionList []domain.QuizQuestion

func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	return jsonValue(q)
}

func (q *QuestionList) Scan(value interface{}) error {
	*q = QuestionList{}
	return jsonScan(value, q)
}

// TopicList stores related topics as a JSON column
type TopicList []domain.RelatedTopic

func (t TopicList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return jsonValue(t)
}

func (t *TopicList) Scan(value interface{}) error {
	*t = TopicList{}
	return jsonScan(value, t)
}

// Quiz is the database model for a persisted quiz record. The nested lists
// live in JSON columns because they are never queried independently of their
// parent record.
type Quiz struct {
	ID              string         `db:"id"`
	WikipediaURL    string         `db:"wikipedia_url"`
	ArticleTitle    string         `db:"article_title"`
	ArticleSummary  string         `db:"article_summary"`
	ArticleImageURL sql.NullString `db:"article_image_url"`
	Sections        SectionList    `db:"sections"`
	QuizData        QuestionList   `db:"quiz_data"`
	RelatedTopics   TopicList      `db:"related_topics"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
