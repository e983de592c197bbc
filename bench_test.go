package pcomb

import (
	"strings"
	"testing"
)

// ambiguousCall builds a grammar where every alternative re-parses the same
// argument list before failing on the closing token.
func ambiguousCall(memo bool) Parser[string] {
	args := Take(Between(Rune('('), SepBy(Token(Int()), Symbol(",")), Rune(')')))
	if memo {
		args = Memo(args)
	}
	call := func(end string) Parser[string] {
		return Skip(Then(Identifier(), args), Literal(end))
	}
	return Choice(call(";"), call("!"), call("?"), call("."))
}

func benchmarkCall(b *testing.B, memo bool) {
	input := "f(" + strings.Repeat("1, ", 200) + "1)."
	r := NewRunner(ambiguousCall(memo), RunnerOpts{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkChoiceWithoutMemo(b *testing.B) {
	benchmarkCall(b, false)
}

func BenchmarkChoiceWithMemo(b *testing.B) {
	benchmarkCall(b, true)
}

func BenchmarkNestedList(b *testing.B) {
	var sb strings.Builder
	for range 50 {
		sb.WriteString("[1,")
	}
	sb.WriteString("2")
	for range 50 {
		sb.WriteString("]")
	}
	input := sb.String()
	r := NewRunner(nestedList(), RunnerOpts{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWhitespaceTokens(b *testing.B) {
	input := strings.Repeat("alpha  beta\tgamma\n", 100)
	r := NewRunner(Many(Token(Identifier())), RunnerOpts{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
