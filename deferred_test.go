package pcomb

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nestedList returns a grammar for bracketed, comma separated lists of
// integers and nested lists, e.g. "[1,[2,3],4]".
func nestedList() Parser[any] {
	value := Deferred[any]("value")
	number := TryMap(Take(Many1(Digit())), func(s string) (any, error) {
		n, err := strconv.Atoi(s)
		return n, err
	})
	list := Map(Between(Rune('['), SepBy(value.Parser(), Rune(',')), Rune(']')), func(vs []any) any {
		if vs == nil {
			return []any{}
		}
		return vs
	})
	value.Define(Choice(number, list))
	return value.Parser()
}

func TestDeferred_Recursive(t *testing.T) {
	grammar := nestedList()

	v, err := Parse(grammar, "[1,[2,3],4]", false)
	require.NoError(t, err)
	assert.Equal(t, []any{1, []any{2, 3}, 4}, v)

	v, err = Parse(grammar, "[[],[[]]]", false)
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{}, []any{[]any{}}}, v)

	_, err = Parse(grammar, "[1,[2,3,4", false)
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, MatchFailure, d.Kind)
	assert.Equal(t, 9, d.Offset)
	assert.Equal(t, []string{"','", "']'", DescDigit}, d.Expected.Items())
	assert.Equal(t, DescEndOfInput, d.Found)
}

func TestDeferred_Undefined(t *testing.T) {
	ref := Deferred[string]("missing")
	p := ref.Parser() // building is fine

	assert.False(t, ref.Defined())
	err := recoverErr(t, func() { p(NewCursor("x")) })
	assert.ErrorIs(t, err, ErrUndefinedRule)
	assert.Contains(t, err.Error(), "missing")
}

func TestDeferred_Redefined(t *testing.T) {
	ref := Deferred[string]("greeting")
	ref.Define(Literal("hi"))
	assert.True(t, ref.Defined())

	err := recoverErr(t, func() { ref.Define(Literal("hello")) })
	assert.ErrorIs(t, err, ErrRuleRedefined)

	// the first definition stays in place
	o := ref.Parser()(NewCursor("hi"))
	require.True(t, o.Ok())
	assert.Equal(t, "hi", o.Value)
}

func TestDeferred_GeneratedName(t *testing.T) {
	a := Deferred[int]("")
	b := Deferred[int]("")

	assert.True(t, strings.HasPrefix(a.Name(), "rule-"))
	assert.NotEqual(t, a.Name(), b.Name())
}

func TestLazy(t *testing.T) {
	var builds atomic.Int32
	p := Lazy(func() Parser[string] {
		builds.Add(1)
		return Literal("x")
	})
	assert.Equal(t, int32(0), builds.Load())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := p(NewCursor("x"))
			assert.True(t, o.Ok())
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), builds.Load())
}

func TestGrammar_MutualRecursion(t *testing.T) {
	g := NewGrammar("sum")
	expr := Rule[int](g, "expr")
	term := Rule[int](g, "term")

	expr.Define(Map(Seq(term.Parser(), Many(Then(Rune('+'), term.Parser()))), func(p Pair[int, []int]) int {
		total := p.First
		for _, n := range p.Second {
			total += n
		}
		return total
	}))
	term.Define(Choice(
		Map(Digit(), func(r rune) int { return int(r - '0') }),
		Between(Rune('('), Rule[int](g, "expr").Parser(), Rune(')')),
	))
	require.NoError(t, g.Check())

	v, err := Parse(expr.Parser(), "(1+2)+(3+(4))", false)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestGrammar_Registry(t *testing.T) {
	g := NewGrammar("calc")
	assert.Equal(t, "calc", g.Name())

	expr := Rule[int](g, "expr")
	Rule[string](g, "name")
	assert.Same(t, expr, Rule[int](g, "expr"))
	assert.Equal(t, []string{"expr", "name"}, g.Names())

	err := g.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndefinedRule))
	assert.Contains(t, err.Error(), "expr, name")

	expr.Define(Pure(1))
	err = g.Check()
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "expr")

	Rule[string](g, "name").Define(Identifier())
	assert.NoError(t, g.Check())
}

func TestGrammar_Misuse(t *testing.T) {
	g := NewGrammar("calc")
	Rule[int](g, "expr")

	err := recoverErr(t, func() { Rule[string](g, "expr") })
	assert.ErrorIs(t, err, ErrRuleTypeMismatch)

	err = recoverErr(t, func() { Rule[int](g, "") })
	assert.ErrorIs(t, err, ErrMissingDescription)
}

func TestGrammar_Concurrent(t *testing.T) {
	g := NewGrammar("shared")

	var wg sync.WaitGroup
	refs := make([]*Ref[string], 32)
	for i := range refs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refs[i] = Rule[string](g, "word")
		}()
	}
	wg.Wait()

	for _, r := range refs[1:] {
		assert.Same(t, refs[0], r)
	}
	assert.Equal(t, []string{"word"}, g.Names())
}
