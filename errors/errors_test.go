package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestIsParseError(t *testing.T) {
	assert.False(t, IsParseError(nil))
	assert.False(t, IsParseError(New("unrelated")))

	err := NewParseError("bad token at line %d", 7)
	require.NotNil(t, err)
	assert.True(t, IsParseError(err))
	assert.Contains(t, err.Error(), "bad token at line 7")

	wrapped := Wrap(err, "converting sample.d.ts")
	assert.True(t, IsParseError(wrapped))
}
