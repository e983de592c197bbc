package pcomb

// Outcome is the result of running a Parser on a Cursor: either a value and
// the cursor after it, or a Failure.
//
// A successful Outcome may still carry a Failure. It records the furthest
// failure abandoned on the way to the value, for example the attempt that
// ended a repetition or an alternative that did not match. Sequencing
// combinators merge it into later failures so the diagnostic of a parse
// points at the furthest position any branch reached.
type Outcome[T any] struct {
	Value   T
	Next    Cursor
	Failure Failure
	ok      bool
}

// Success returns a successful outcome.
func Success[T any](value T, next Cursor) Outcome[T] {
	return Outcome[T]{Value: value, Next: next, ok: true}
}

// Failed returns a failed outcome.
func Failed[T any](f Failure) Outcome[T] {
	return Outcome[T]{Failure: f}
}

// Ok reports whether the parse attempt matched.
func (o Outcome[T]) Ok() bool {
	return o.ok
}

// WithHint merges h into the failure information of o. For a failed outcome
// this can move the failure further into the input; for a successful one it
// only updates the hint.
func (o Outcome[T]) WithHint(h Failure) Outcome[T] {
	o.Failure = o.Failure.Merge(h)
	return o
}

// failAs converts a failed outcome to another value type.
func failAs[U, T any](o Outcome[T]) Outcome[U] {
	return Outcome[U]{Failure: o.Failure}
}
