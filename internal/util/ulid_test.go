package util

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	id := NewULID()
	require.Len(t, id, 26)

	_, err := ulid.Parse(id)
	assert.NoError(t, err)
}

func TestNewULIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewULID()
		assert.False(t, seen[id], "duplicate ULID %s", id)
		seen[id] = true
	}
}
