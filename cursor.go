package pcomb

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Cursor is an immutable position within the input of a parse. Advancing a
// Cursor returns a new value; the input itself is never modified, so keeping
// an earlier Cursor around is all it takes to backtrack to it.
//
// Positions are byte offsets into the input. Elements are UTF-8 encoded
// runes; invalid encodings read as utf8.RuneError with a width of one byte.
type Cursor struct {
	input string
	pos   int
	run   *runState // per-parse state attached by the Runner, may be nil
}

// NewCursor returns a Cursor at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{input: input}
}

// Pos returns the byte offset of the cursor.
func (c Cursor) Pos() int {
	return c.pos
}

// Input returns the complete input the cursor points into.
func (c Cursor) Input() string {
	return c.input
}

// Remaining returns the number of bytes left after the cursor.
func (c Cursor) Remaining() int {
	return len(c.input) - c.pos
}

// AtEnd reports whether the whole input has been consumed.
func (c Cursor) AtEnd() bool {
	return c.pos >= len(c.input)
}

// Peek returns the rune at the cursor and its encoded width. ok is false at
// the end of the input.
func (c Cursor) Peek() (r rune, width int, ok bool) {
	if c.AtEnd() {
		return 0, 0, false
	}
	if b := c.input[c.pos]; b < utf8.RuneSelf {
		return rune(b), 1, true
	}
	r, width = utf8.DecodeRuneInString(c.input[c.pos:])
	return r, width, true
}

// Advance returns a cursor n bytes further into the input. It panics if the
// result would leave the input; primitives check bounds before advancing.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 || n > len(c.input)-c.pos {
		panic(fmt.Errorf("%w: advance by %d at offset %d of %d", ErrCursorOutOfRange, n, c.pos, len(c.input)))
	}
	c.pos += n
	return c
}

// Slice returns the input between two byte offsets without copying it.
func (c Cursor) Slice(from, to int) string {
	if from < 0 || to < from || to > len(c.input) {
		panic(fmt.Errorf("%w: slice [%d:%d] of %d", ErrCursorOutOfRange, from, to, len(c.input)))
	}
	return c.input[from:to]
}

// Rest returns the unconsumed input.
func (c Cursor) Rest() string {
	return c.input[c.pos:]
}

// HasPrefix reports whether the unconsumed input starts with s.
func (c Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.input[c.pos:], s)
}

func (c Cursor) String() string {
	return fmt.Sprintf("offset %d of %d", c.pos, len(c.input))
}
