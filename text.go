package pcomb

import (
	"slices"
	"strconv"
	"unicode"
)

// StringOf matches runes contained in set, repeated as spec allows, and
// returns the matched text.
func StringOf(set string, spec RepeatSpec) Parser[string] {
	return Take(Repeat(RuneIn(set), spec))
}

// StringNoneOf matches runes not contained in set, repeated as spec allows,
// and returns the matched text.
func StringNoneOf(set string, spec RepeatSpec) Parser[string] {
	return Take(Repeat(RuneNotIn(set), spec))
}

// Whitespace skips zero or more Unicode white space runes. It never fails.
func Whitespace() Parser[struct{}] {
	return func(c Cursor) Outcome[struct{}] {
		next := c
		for {
			r, w, ok := next.Peek()
			if !ok || !unicode.IsSpace(r) {
				return Success(struct{}{}, next)
			}
			next = next.Advance(w)
		}
	}
}

// Token runs p and skips the white space following it.
func Token[T any](p Parser[T]) Parser[T] {
	return Skip(p, Whitespace())
}

// Symbol matches the literal s and skips the white space following it.
func Symbol(s string) Parser[string] {
	return Token(Literal(s))
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// Digit matches a single ASCII decimal digit.
func Digit() Parser[rune] {
	return Satisfy(isDigit, DescDigit)
}

// HexDigit matches a single ASCII hexadecimal digit.
func HexDigit() Parser[rune] {
	return Satisfy(isHexDigit, DescHexDigit)
}

// Digits matches one or more ASCII decimal digits and returns them as text.
func Digits() Parser[string] {
	return Take(Many1(Digit()))
}

// Uint matches an unsigned decimal integer.
func Uint() Parser[uint64] {
	return TryMap(Label(Digits(), DescUnsigned), func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

// Int matches a decimal integer with an optional sign.
func Int() Parser[int64] {
	text := Take(Seq(Optional(RuneIn("+-")), Digits()))
	return TryMap(Label(text, DescInteger), func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// Float matches a decimal number with an optional sign, fraction and
// exponent, e.g. "-1.2e3".
func Float() Parser[float64] {
	sign := Optional(RuneIn("+-"))
	fraction := Optional(Seq(Rune('.'), Digits()))
	exponent := Optional(Seq3(RuneIn("eE"), sign, Digits()))
	text := Take(Seq3(sign, Digits(), Seq(fraction, exponent)))
	return TryMap(Label(text, DescFloat), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Identifier matches a letter or underscore followed by letters, digits and
// underscores.
func Identifier() Parser[string] {
	first := Satisfy(func(r rune) bool { return r == '_' || unicode.IsLetter(r) }, "identifier")
	rest := Many(Satisfy(func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}, "identifier character"))
	return Take(Seq(first, rest))
}

// Keyword matches the literal word and requires that it is not directly
// followed by an identifier character, so "nullable" does not match "null".
func Keyword(word string) Parser[string] {
	boundary := Not(Satisfy(func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}, "identifier character"))
	return Label(Skip(Literal(word), boundary), quote(word))
}

// OneOf matches the first of the given literals found at the cursor. Longer
// literals are tried first so a literal is never cut short by its own prefix.
func OneOf(words ...string) Parser[string] {
	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, func(a, b string) int { return len(b) - len(a) })
	ps := make([]Parser[string], len(sorted))
	for i, w := range sorted {
		ps[i] = Literal(w)
	}
	return Choice(ps...)
}

// Unquote matches a Go style double quoted string literal and returns its
// unescaped value.
func Unquote() Parser[string] {
	char := Choice(
		Take(Seq(Rune('\\'), AnyRune())),
		Take(RuneNotIn("\"\\\n")),
	)
	text := Take(Seq3(Rune('"'), Many(char), Rune('"')))
	return TryMap(Label(text, "string"), strconv.Unquote)
}
