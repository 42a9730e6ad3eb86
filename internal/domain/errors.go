package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal   ErrorCode = "INTERNAL_ERROR"
	ErrValidation ErrorCode = "VALIDATION_ERROR"

	// Quiz pipeline errors
	ErrInvalidSource    ErrorCode = "INVALID_SOURCE"
	ErrScraping         ErrorCode = "SCRAPING_ERROR"
	ErrGeneration       ErrorCode = "GENERATION_ERROR"
	ErrGenerationFormat ErrorCode = "GENERATION_FORMAT_ERROR"
	ErrQuizNotFound     ErrorCode = "QUIZ_NOT_FOUND"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidSourceError(url string) *DomainError {
	return NewError(ErrInvalidSource, fmt.Sprintf("Invalid Wikipedia URL: %s. Must be a valid Wikipedia article URL.", url), nil)
}

func NewScrapingError(message string, err error) *DomainError {
	return NewError(ErrScraping, message, err)
}

func NewGenerationError(err error) *DomainError {
	return NewError(ErrGeneration, "Failed to generate quiz questions", err)
}

func NewGenerationFormatError(message string, err error) *DomainError {
	return NewError(ErrGenerationFormat, message, err)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(ErrQuizNotFound, fmt.Sprintf("Quiz not found: %s", quizID), nil)
}

func NewValidationError(message string) *DomainError {
	return NewError(ErrValidation, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}
