package pcomb

import (
	"fmt"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// RepeatSpec
///////////////////////////////////////////////////////////////////////////////

// RepeatSpec bounds how many times Repeat applies its parser. A negative Max
// means there is no upper bound.
type RepeatSpec struct {
	Min int
	Max int
}

// AnyTimes is zero or more repetitions.
func AnyTimes() RepeatSpec { return RepeatSpec{Min: 0, Max: -1} }

// AtLeast is n or more repetitions.
func AtLeast(n int) RepeatSpec { return RepeatSpec{Min: n, Max: -1} }

// AtMost is between zero and n repetitions.
func AtMost(n int) RepeatSpec { return RepeatSpec{Min: 0, Max: n} }

// Exactly is exactly n repetitions.
func Exactly(n int) RepeatSpec { return RepeatSpec{Min: n, Max: n} }

// Range is between lo and hi repetitions, inclusive.
func Range(lo, hi int) RepeatSpec { return RepeatSpec{Min: lo, Max: hi} }

func (s RepeatSpec) validate() error {
	if s.Min < 0 || (s.Max >= 0 && s.Max < s.Min) {
		return fmt.Errorf("%w: %s", ErrInvalidRepeat, s)
	}
	return nil
}

func (s RepeatSpec) unbounded() bool {
	return s.Max < 0
}

func (s RepeatSpec) String() string {
	if s.unbounded() {
		return "{" + strconv.Itoa(s.Min) + ",}"
	}
	return "{" + strconv.Itoa(s.Min) + "," + strconv.Itoa(s.Max) + "}"
}

///////////////////////////////////////////////////////////////////////////////
// Repetition
///////////////////////////////////////////////////////////////////////////////

// Repeat applies p as many times as spec allows and as it matches, and
// collects the values. It fails only when p matched fewer than spec.Min
// times. The failure that ended the repetition is not propagated, the
// returned cursor is the one before that attempt.
//
// If p matches without consuming input the repetition stops there, since p
// would match the same way forever. The zero-width value is collected once,
// or as many times as needed to reach spec.Min.
//
// Repeat panics with ErrInvalidRepeat when spec is inconsistent.
func Repeat[T any](p Parser[T], spec RepeatSpec) Parser[[]T] {
	mustParser(p, "Repeat")
	if err := spec.validate(); err != nil {
		panic(err)
	}
	return func(c Cursor) Outcome[[]T] {
		var (
			hint   Failure
			values []T
		)
		cur := c
		for spec.unbounded() || len(values) < spec.Max {
			o := p(cur)
			hint = hint.Merge(o.Failure)
			if !o.ok {
				break
			}
			values = append(values, o.Value)
			if o.Next.pos == cur.pos {
				for len(values) < spec.Min {
					values = append(values, o.Value)
				}
				break
			}
			cur = o.Next
		}
		if len(values) < spec.Min {
			return Failed[[]T](hint)
		}
		return Outcome[[]T]{Value: values, Next: cur, Failure: hint, ok: true}
	}
}

// Many applies p zero or more times. It never fails.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, AnyTimes())
}

// Many1 applies p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, AtLeast(1))
}

// SepBy matches zero or more p separated by sep. A trailing separator is not
// consumed.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Map(Optional(SepBy1(p, sep)), func(o Option[[]T]) []T { return o.Value })
}

// SepBy1 matches one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	rest := Many(Then(sep, p))
	return Map(Seq(p, rest), func(v Pair[T, []T]) []T {
		return append([]T{v.First}, v.Second...)
	})
}

// Optional returns the value of p when it matches. When it does not,
// Optional still succeeds, without consuming input. It never fails.
func Optional[T any](p Parser[T]) Parser[Option[T]] {
	mustParser(p, "Optional")
	return func(c Cursor) Outcome[Option[T]] {
		o := p(c)
		if !o.ok {
			return Outcome[Option[T]]{Next: c, Failure: o.Failure, ok: true}
		}
		return Outcome[Option[T]]{Value: Option[T]{Value: o.Value, Valid: true}, Next: o.Next, Failure: o.Failure, ok: true}
	}
}

// Default returns the value of p, or def without consuming input when p does
// not match.
func Default[T any](p Parser[T], def T) Parser[T] {
	return Map(Optional(p), func(o Option[T]) T { return o.Get(def) })
}
