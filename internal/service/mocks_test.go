package service

import (
	"context"

	"wikiquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockArticleExtractor struct {
	mock.Mock
}

func (m *MockArticleExtractor) Extract(ctx context.Context, url string) (*domain.Article, error) {
	args := m.Called(ctx, url)
	if article, ok := args.Get(0).(*domain.Article); ok {
		return article, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Insert(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if quiz, ok := args.Get(0).(*domain.Quiz); ok {
		return quiz, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockQuizRepository) ListOrderedByCreatedDesc(ctx context.Context, offset, limit int) ([]*domain.Quiz, error) {
	args := m.Called(ctx, offset, limit)
	if quizzes, ok := args.Get(0).([]*domain.Quiz); ok {
		return quizzes, args.Error(1)
	}
	return nil, args.Error(1)
}
