package pcomb

import "fmt"

///////////////////////////////////////////////////////////////////////////////
// Parser
///////////////////////////////////////////////////////////////////////////////

// Parser is the capability every primitive and combinator implements: given
// a Cursor it returns an Outcome. A Parser must not modify anything reachable
// from outside of it, and the same Cursor must always produce the same
// Outcome. Backtracking relies on this: retrying an alternative from a saved
// Cursor is always safe.
//
// Parsers are plain function values, so a grammar built from them is
// immutable once constructed and may be shared by concurrent parses.
type Parser[T any] func(Cursor) Outcome[T]

// Or is shorthand for Choice(p, alt).
func (p Parser[T]) Or(alt Parser[T]) Parser[T] {
	return Choice(p, alt)
}

// Label is shorthand for Label(p, desc).
func (p Parser[T]) Label(desc string) Parser[T] {
	return Label(p, desc)
}

// Memo is shorthand for Memo(p).
func (p Parser[T]) Memo() Parser[T] {
	return Memo(p)
}

///////////////////////////////////////////////////////////////////////////////
// Result shapes
///////////////////////////////////////////////////////////////////////////////

// Pair is the result of Seq.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the result of Seq3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Option is the result of Optional. Valid is false when the inner parser did
// not match.
type Option[T any] struct {
	Value T
	Valid bool
}

// Get returns the value, or def when the option is empty.
func (o Option[T]) Get(def T) T {
	if o.Valid {
		return o.Value
	}
	return def
}

func mustParser[T any](p Parser[T], who string) {
	if p == nil {
		panic(fmt.Errorf("%w: %s", ErrNilParser, who))
	}
}
