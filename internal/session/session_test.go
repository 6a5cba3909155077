package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New("  Alice ", 42)

	assert.Equal(t, "Alice", s.Login)
	assert.Equal(t, int64(42), s.UserID)
	_, err := uuid.Parse(s.VisitorID)
	require.NoError(t, err)
	assert.NotEqual(t, s.VisitorID, New("Alice", 42).VisitorID)
}

func TestHistoryOwner(t *testing.T) {
	assert.Equal(t, "alice", New("Alice", 1).HistoryOwner())
	assert.Equal(t, "anonymous", New("", 0).HistoryOwner())
	assert.True(t, New(" ", 0).Anonymous())
}
