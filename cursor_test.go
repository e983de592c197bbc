package pcomb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverErr runs f and returns the error it panicked with.
func recoverErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	f()
	return nil
}

func TestCursor_Basics(t *testing.T) {
	c := NewCursor("héllo")

	assert.Equal(t, 0, c.Pos())
	assert.False(t, c.AtEnd())
	assert.Equal(t, 6, c.Remaining())

	r, w, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, 'h', r)
	assert.Equal(t, 1, w)

	next := c.Advance(w)
	r, w, ok = next.Peek()
	require.True(t, ok)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, w)

	// advancing returns a new cursor, the old one is untouched
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 1, next.Pos())
	assert.Equal(t, "éllo", next.Rest())
	assert.True(t, next.HasPrefix("él"))
	assert.Equal(t, "hé", c.Slice(0, 3))
}

func TestCursor_End(t *testing.T) {
	c := NewCursor("ab").Advance(2)

	assert.True(t, c.AtEnd())
	_, _, ok := c.Peek()
	assert.False(t, ok)
	assert.Equal(t, "", c.Rest())
}

func TestCursor_OutOfRange(t *testing.T) {
	c := NewCursor("ab")

	err := recoverErr(t, func() { c.Advance(3) })
	assert.True(t, errors.Is(err, ErrCursorOutOfRange))

	err = recoverErr(t, func() { c.Advance(-1) })
	assert.True(t, errors.Is(err, ErrCursorOutOfRange))

	err = recoverErr(t, func() { c.Slice(1, 3) })
	assert.True(t, errors.Is(err, ErrCursorOutOfRange))
}

func TestCursor_InvalidUTF8(t *testing.T) {
	c := NewCursor("\xffa")

	r, w, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, '�', r)
	assert.Equal(t, 1, w)
}
