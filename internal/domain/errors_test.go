package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewScrapingError("Failed to connect to Wikipedia", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to connect to Wikipedia: connection refused", err.Error())
}

func TestDomainErrorWithoutCause(t *testing.T) {
	err := NewValidationError("limit must be between 1 and 100")

	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "limit must be between 1 and 100", err.Error())
}

func TestDomainErrorCodesAreDistinct(t *testing.T) {
	codes := []ErrorCode{
		ErrInternal, ErrValidation, ErrInvalidSource, ErrScraping,
		ErrGeneration, ErrGenerationFormat, ErrQuizNotFound,
	}
	seen := make(map[ErrorCode]bool, len(codes))
	for _, code := range codes {
		assert.False(t, seen[code], "duplicate error code %s", code)
		seen[code] = true
	}
}

func TestDomainErrorMarshalJSONOmitsCause(t *testing.T) {
	err := NewInternalError("Failed to save quiz", errors.New("pq: relation does not exist"))

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code": "INTERNAL_ERROR", "message": "Failed to save quiz"}`, string(data))
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	inner := NewQuizNotFoundError("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	wrapped := errors.Join(errors.New("request failed"), inner)

	var domainErr *DomainError
	require.ErrorAs(t, wrapped, &domainErr)
	assert.Equal(t, ErrQuizNotFound, domainErr.Code)
}
