package pcomb

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Deferred references
///////////////////////////////////////////////////////////////////////////////

// Ref is a forward reference to a parser that is defined after the parsers
// using it are built. It is how a rule refers to itself, or to a sibling rule
// that does not exist yet:
//
//	value := pcomb.Deferred[any]("value")
//	list := pcomb.Between(pcomb.Rune('['), pcomb.SepBy(value.Parser(), pcomb.Rune(',')), pcomb.Rune(']'))
//	value.Define(pcomb.Choice(number, pcomb.Map(list, toAny)))
//
// The definition is looked up each time the placeholder runs. It must be
// installed exactly once, before the first parse reaches the placeholder;
// running an undefined Ref is a bug in the grammar and panics with
// ErrUndefinedRule.
type Ref[T any] struct {
	name string
	def  atomic.Pointer[Parser[T]]
}

// Deferred returns an undefined reference. An empty name is replaced by a
// generated one so panics and traces can still tell rules apart.
func Deferred[T any](name string) *Ref[T] {
	if name == "" {
		name = "rule-" + uuid.NewString()
	}
	return &Ref[T]{name: name}
}

// Name returns the name of the rule.
func (r *Ref[T]) Name() string {
	return r.name
}

// Defined reports whether Define has been called.
func (r *Ref[T]) Defined() bool {
	return r.def.Load() != nil
}

// Define installs the parser the reference stands for. It panics with
// ErrRuleRedefined when called a second time.
func (r *Ref[T]) Define(p Parser[T]) {
	mustParser(p, "Define "+r.name)
	if !r.def.CompareAndSwap(nil, &p) {
		panic(fmt.Errorf("%w: %s", ErrRuleRedefined, r.name))
	}
}

// Parser returns the placeholder parser. It may be used before Define is
// called, but not run.
func (r *Ref[T]) Parser() Parser[T] {
	return func(c Cursor) Outcome[T] {
		p := r.def.Load()
		if p == nil {
			panic(fmt.Errorf("%w: %s", ErrUndefinedRule, r.name))
		}
		return (*p)(c)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Lazy construction
///////////////////////////////////////////////////////////////////////////////

// Lazy defers building a parser until the first time it runs. build is called
// at most once, even when parses run concurrently. Useful when a parser is
// expensive to construct and often not reached, or when its constructor
// refers back to the rule being built.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	if build == nil {
		panic(fmt.Errorf("%w: Lazy", ErrNilParser))
	}
	get := sync.OnceValue(func() Parser[T] {
		p := build()
		mustParser(p, "Lazy")
		return p
	})
	return func(c Cursor) Outcome[T] {
		return get()(c)
	}
}
