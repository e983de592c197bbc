package pcomb

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// rule is the type-erased view of a Ref held by a Grammar.
type rule interface {
	Name() string
	Defined() bool
}

// Grammar is a registry of named rules. It lets a set of mutually recursive
// rules refer to each other by name, whatever the order they are defined in,
// and checks that every rule referred to was eventually defined.
//
// Rules of a Grammar may have different value types. A Grammar is safe for
// concurrent use.
type Grammar struct {
	name  string
	mu    sync.RWMutex
	rules map[string]rule
	order []string
}

// NewGrammar returns an empty grammar.
func NewGrammar(name string) *Grammar {
	return &Grammar{
		name:  name,
		rules: make(map[string]rule),
	}
}

// Name returns the name the grammar was created with.
func (g *Grammar) Name() string {
	return g.name
}

// Rule returns the reference registered under name, creating it on first use.
// It panics with ErrRuleTypeMismatch if name was registered with another
// value type.
func Rule[T any](g *Grammar, name string) *Ref[T] {
	if name == "" {
		panic(fmt.Errorf("%w: rule name in grammar %q", ErrMissingDescription, g.name))
	}

	g.mu.RLock()
	existing, ok := g.rules[name]
	g.mu.RUnlock()
	if ok {
		return typedRule[T](g, existing)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if existing, ok := g.rules[name]; ok {
		return typedRule[T](g, existing)
	}
	ref := Deferred[T](name)
	g.rules[name] = ref
	g.order = append(g.order, name)
	return ref
}

func typedRule[T any](g *Grammar, r rule) *Ref[T] {
	ref, ok := r.(*Ref[T])
	if !ok {
		var want *Ref[T]
		panic(fmt.Errorf("%w: %s.%s is %T, not %T", ErrRuleTypeMismatch, g.name, r.Name(), r, want))
	}
	return ref
}

// Names returns the rule names in registration order.
func (g *Grammar) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.order)
}

// Check returns an error wrapping ErrUndefinedRule that lists every rule
// that was referred to but never defined, or nil if there is none.
func (g *Grammar) Check() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var missing []string
	for _, name := range g.order {
		if !g.rules[name].Defined() {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: grammar %q: %s", ErrUndefinedRule, g.name, strings.Join(missing, ", "))
}
