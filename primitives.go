package pcomb

import (
	"fmt"
	"strings"
	"unicode"
)

///////////////////////////////////////////////////////////////////////////////
// Primitives
///////////////////////////////////////////////////////////////////////////////

// Literal matches s exactly. Matching is all-or-nothing at the anchor: when
// the input differs anywhere inside s the failure is reported at the position
// where the literal started, not at the first mismatching byte.
//
// Literal panics with ErrEmptyLiteral if s is empty.
func Literal(s string) Parser[string] {
	if s == "" {
		panic(fmt.Errorf("%w: Literal", ErrEmptyLiteral))
	}
	exp := Expect(quote(s))
	return func(c Cursor) Outcome[string] {
		if !c.HasPrefix(s) {
			return Failed[string](Failure{At: c.pos, Expected: exp})
		}
		return Success(s, c.Advance(len(s)))
	}
}

// LiteralFold matches s under Unicode simple case folding and returns the
// matched input text.
func LiteralFold(s string) Parser[string] {
	if s == "" {
		panic(fmt.Errorf("%w: LiteralFold", ErrEmptyLiteral))
	}
	exp := Expect(quote(s))
	return func(c Cursor) Outcome[string] {
		next := c
		for _, want := range s {
			r, w, ok := next.Peek()
			if !ok || !equalFold(want, r) {
				return Failed[string](Failure{At: c.pos, Expected: exp})
			}
			next = next.Advance(w)
		}
		return Success(c.Slice(c.pos, next.pos), next)
	}
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

// Satisfy matches a single rune for which pred returns true. desc names the
// class of runes in diagnostics; it panics with ErrMissingDescription when
// desc is empty.
func Satisfy(pred func(rune) bool, desc string) Parser[rune] {
	if desc == "" {
		panic(fmt.Errorf("%w: Satisfy", ErrMissingDescription))
	}
	if pred == nil {
		panic(fmt.Errorf("%w: Satisfy predicate", ErrNilParser))
	}
	exp := Expect(desc)
	return func(c Cursor) Outcome[rune] {
		r, w, ok := c.Peek()
		if !ok || !pred(r) {
			return Failed[rune](Failure{At: c.pos, Expected: exp})
		}
		return Success(r, c.Advance(w))
	}
}

// Rune matches exactly r.
func Rune(r rune) Parser[rune] {
	return Satisfy(func(x rune) bool { return x == r }, quote(string(r)))
}

// RuneIn matches any rune contained in set.
func RuneIn(set string) Parser[rune] {
	if set == "" {
		panic(fmt.Errorf("%w: RuneIn with empty set", ErrInvalidRange))
	}
	return Satisfy(func(r rune) bool { return strings.ContainsRune(set, r) }, "one of "+quote(set))
}

// RuneNotIn matches any rune not contained in set.
func RuneNotIn(set string) Parser[rune] {
	return Satisfy(func(r rune) bool { return !strings.ContainsRune(set, r) }, "any character except "+quote(set))
}

// RuneRange matches any rune between lo and hi, inclusive. It panics with
// ErrInvalidRange if lo > hi.
func RuneRange(lo, hi rune) Parser[rune] {
	if lo > hi {
		panic(fmt.Errorf("%w: %q > %q", ErrInvalidRange, lo, hi))
	}
	desc := quote(string(lo)) + "-" + quote(string(hi))
	return Satisfy(func(r rune) bool { return lo <= r && r <= hi }, desc)
}

// AnyRune matches any single rune.
func AnyRune() Parser[rune] {
	return Satisfy(func(rune) bool { return true }, DescAnyRune)
}

// EOF succeeds without consuming anything when the cursor is at the end of
// the input.
func EOF() Parser[struct{}] {
	exp := Expect(DescEndOfInput)
	return func(c Cursor) Outcome[struct{}] {
		if !c.AtEnd() {
			return Failed[struct{}](Failure{At: c.pos, Expected: exp})
		}
		return Success(struct{}{}, c)
	}
}

// Fail never matches and reports desc as expected.
func Fail[T any](desc string) Parser[T] {
	if desc == "" {
		panic(fmt.Errorf("%w: Fail", ErrMissingDescription))
	}
	exp := Expect(desc)
	return func(c Cursor) Outcome[T] {
		return Failed[T](Failure{At: c.pos, Expected: exp})
	}
}

// Pure always matches, consumes nothing and returns v.
func Pure[T any](v T) Parser[T] {
	return func(c Cursor) Outcome[T] {
		return Success(v, c)
	}
}
