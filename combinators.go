package pcomb

import "fmt"

///////////////////////////////////////////////////////////////////////////////
// Sequence
///////////////////////////////////////////////////////////////////////////////

// Seq runs pa and then pb on the cursor pa returned. It fails with whichever
// failure happened first; the failure position is never before where pb
// started.
func Seq[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	mustParser(pa, "Seq")
	mustParser(pb, "Seq")
	return func(c Cursor) Outcome[Pair[A, B]] {
		a := pa(c)
		if !a.ok {
			return failAs[Pair[A, B]](a)
		}
		b := pb(a.Next)
		if !b.ok {
			return Failed[Pair[A, B]](a.Failure.Merge(b.Failure))
		}
		return Outcome[Pair[A, B]]{
			Value:   Pair[A, B]{First: a.Value, Second: b.Value},
			Next:    b.Next,
			Failure: a.Failure.Merge(b.Failure),
			ok:      true,
		}
	}
}

// Seq3 runs three parsers in sequence.
func Seq3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Triple[A, B, C]] {
	mustParser(pa, "Seq3")
	mustParser(pb, "Seq3")
	mustParser(pc, "Seq3")
	return func(c Cursor) Outcome[Triple[A, B, C]] {
		a := pa(c)
		if !a.ok {
			return failAs[Triple[A, B, C]](a)
		}
		b := pb(a.Next)
		hint := a.Failure.Merge(b.Failure)
		if !b.ok {
			return Failed[Triple[A, B, C]](hint)
		}
		x := pc(b.Next)
		hint = hint.Merge(x.Failure)
		if !x.ok {
			return Failed[Triple[A, B, C]](hint)
		}
		return Outcome[Triple[A, B, C]]{
			Value:   Triple[A, B, C]{First: a.Value, Second: b.Value, Third: x.Value},
			Next:    x.Next,
			Failure: hint,
			ok:      true,
		}
	}
}

// Then runs pa and then pb, keeping only the value of pb.
func Then[A, B any](pa Parser[A], pb Parser[B]) Parser[B] {
	mustParser(pa, "Then")
	mustParser(pb, "Then")
	return func(c Cursor) Outcome[B] {
		a := pa(c)
		if !a.ok {
			return failAs[B](a)
		}
		return pb(a.Next).WithHint(a.Failure)
	}
}

// Skip runs pa and then pb, keeping only the value of pa.
func Skip[A, B any](pa Parser[A], pb Parser[B]) Parser[A] {
	mustParser(pa, "Skip")
	mustParser(pb, "Skip")
	return func(c Cursor) Outcome[A] {
		a := pa(c)
		if !a.ok {
			return a
		}
		b := pb(a.Next)
		if !b.ok {
			return Failed[A](a.Failure.Merge(b.Failure))
		}
		a.Next = b.Next
		return a.WithHint(b.Failure)
	}
}

// Between runs open, p and closing in sequence and keeps the value of p.
func Between[O, T, C any](open Parser[O], p Parser[T], closing Parser[C]) Parser[T] {
	return Skip(Then(open, p), closing)
}

// SeqOf runs parsers of the same type in sequence and collects their values.
func SeqOf[T any](ps ...Parser[T]) Parser[[]T] {
	for _, p := range ps {
		mustParser(p, "SeqOf")
	}
	return func(c Cursor) Outcome[[]T] {
		var hint Failure
		values := make([]T, 0, len(ps))
		cur := c
		for _, p := range ps {
			o := p(cur)
			hint = hint.Merge(o.Failure)
			if !o.ok {
				return Failed[[]T](hint)
			}
			values = append(values, o.Value)
			cur = o.Next
		}
		return Outcome[[]T]{Value: values, Next: cur, Failure: hint, ok: true}
	}
}

// PartialSeq runs parsers in sequence as far as they match and returns the
// values of the matching prefix. It never fails; the first failure is kept
// as a hint.
func PartialSeq[T any](ps ...Parser[T]) Parser[[]T] {
	for _, p := range ps {
		mustParser(p, "PartialSeq")
	}
	return func(c Cursor) Outcome[[]T] {
		var (
			hint   Failure
			values []T
		)
		cur := c
		for _, p := range ps {
			o := p(cur)
			hint = hint.Merge(o.Failure)
			if !o.ok {
				break
			}
			values = append(values, o.Value)
			cur = o.Next
		}
		return Outcome[[]T]{Value: values, Next: cur, Failure: hint, ok: true}
	}
}

///////////////////////////////////////////////////////////////////////////////
// Choice
///////////////////////////////////////////////////////////////////////////////

// Choice tries each parser in order from the same cursor and returns the
// first match. A failing alternative never affects the next one, since every
// alternative starts from the cursor Choice was given.
//
// When all alternatives fail, the failure is the merge of all of them: the
// furthest position any alternative reached, with the expectations of every
// alternative that failed there. The result does not depend on the order of
// the alternatives.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic(ErrEmptyChoice)
	}
	for _, p := range ps {
		mustParser(p, "Choice")
	}
	if len(ps) == 1 {
		return ps[0]
	}
	return func(c Cursor) Outcome[T] {
		var fail Failure
		for _, p := range ps {
			o := p(c)
			if o.ok {
				return o.WithHint(fail)
			}
			fail = fail.Merge(o.Failure)
		}
		return Failed[T](fail)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Mapping and binding
///////////////////////////////////////////////////////////////////////////////

// Map converts the value of p with f. Failures pass through unchanged.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	mustParser(p, "Map")
	return func(c Cursor) Outcome[B] {
		o := p(c)
		if !o.ok {
			return failAs[B](o)
		}
		return Outcome[B]{Value: f(o.Value), Next: o.Next, Failure: o.Failure, ok: true}
	}
}

// TryMap converts the value of p with f, which may reject it. A rejection is
// a match failure at the position p started at, with the error as its cause,
// so a surrounding Choice can still try other alternatives. Whatever p
// abandoned before matching is dropped: the rejection is the reason.
func TryMap[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	mustParser(p, "TryMap")
	return func(c Cursor) Outcome[B] {
		o := p(c)
		if !o.ok {
			return failAs[B](o)
		}
		v, err := f(o.Value)
		if err != nil {
			return Failed[B](Failure{At: c.pos, Causes: []error{err}})
		}
		return Outcome[B]{Value: v, Next: o.Next, Failure: o.Failure, ok: true}
	}
}

// Value replaces the value of p with v.
func Value[A, B any](p Parser[A], v B) Parser[B] {
	return Map(p, func(A) B { return v })
}

// Discard drops the value of p.
func Discard[T any](p Parser[T]) Parser[struct{}] {
	return Value(p, struct{}{})
}

// Bind runs p and then the parser f builds from its value, on the cursor p
// returned. It is the building block for context sensitive grammars, such as
// a length prefix followed by that many elements.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	mustParser(p, "Bind")
	return func(c Cursor) Outcome[B] {
		a := p(c)
		if !a.ok {
			return failAs[B](a)
		}
		next := f(a.Value)
		if next == nil {
			panic(fmt.Errorf("%w: Bind continuation returned nil", ErrNilParser))
		}
		return next(a.Next).WithHint(a.Failure)
	}
}

// Take runs p and returns the input text it consumed instead of its value.
// The text is a slice of the input, no copy is made.
func Take[T any](p Parser[T]) Parser[string] {
	mustParser(p, "Take")
	return func(c Cursor) Outcome[string] {
		o := p(c)
		if !o.ok {
			return failAs[string](o)
		}
		return Outcome[string]{Value: c.Slice(c.pos, o.Next.pos), Next: o.Next, Failure: o.Failure, ok: true}
	}
}

///////////////////////////////////////////////////////////////////////////////
// Diagnostics
///////////////////////////////////////////////////////////////////////////////

// Label names what p matches. When p fails without getting past the position
// it started at, its expectations are replaced by desc; failures further
// into the input are more specific and are kept as they are.
func Label[T any](p Parser[T], desc string) Parser[T] {
	mustParser(p, "Label")
	if desc == "" {
		panic(fmt.Errorf("%w: Label", ErrMissingDescription))
	}
	exp := Expect(desc)
	return func(c Cursor) Outcome[T] {
		o := p(c)
		if !o.ok && o.Failure.At == c.pos && len(o.Failure.Causes) == 0 {
			o.Failure.Expected = exp
		}
		return o
	}
}
