package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_ProducesValidUniqueIDs(t *testing.T) {
	gen := NewUUIDGenerator()

	a := gen.NewID()
	b := gen.NewID()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSequenceGenerator_Deterministic(t *testing.T) {
	gen := NewSequenceGenerator("task")

	assert.Equal(t, "task-1", gen.NewID())
	assert.Equal(t, "task-2", gen.NewID())
	assert.Equal(t, "task-3", gen.NewID())
}
