package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	first := GeneratePassword()
	second := GeneratePassword()

	assert.Len(t, first, 32)
	assert.NotContains(t, first, "-")
	assert.NotEqual(t, first, second)
}

func TestGenerateSessionID(t *testing.T) {
	_, err := uuid.Parse(GenerateSessionID())

	require.NoError(t, err)
}

func TestGenerateGameID(t *testing.T) {
	id := GenerateGameID()

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, GenerateGameID())
}
