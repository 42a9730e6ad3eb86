package domain

import "context"

// QuizRepository is the durable keyed store for completed quiz records.
// Records are insert-only; there is no update or delete path.
type QuizRepository interface {
	Insert(ctx context.Context, quiz *Quiz) error
	// GetByID returns (nil, nil) when no record exists for the id.
	GetByID(ctx context.Context, id string) (*Quiz, error)
	Count(ctx context.Context) (int, error)
	ListOrderedByCreatedDesc(ctx context.Context, offset, limit int) ([]*Quiz, error)
}

// TextGenerator is the opaque text-completion backend: a single prompt in,
// raw text out. No streaming, no multi-turn state.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ArticleExtractor fetches and structures a Wikipedia article.
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (*Article, error)
}
