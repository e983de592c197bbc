package pcomb

// Peek runs p and returns its value without consuming input.
func Peek[T any](p Parser[T]) Parser[T] {
	mustParser(p, "Peek")
	return func(c Cursor) Outcome[T] {
		o := p(c)
		if o.ok {
			o.Next = c
		}
		return o
	}
}

// Not succeeds without consuming input when p does not match at the cursor,
// and fails when it does. The failure names the text p matched, e.g.
// "not '\"'". When p matched without consuming anything it names the rune at
// the cursor instead, or the end of input.
func Not[T any](p Parser[T]) Parser[struct{}] {
	mustParser(p, "Not")
	return func(c Cursor) Outcome[struct{}] {
		o := p(c)
		if !o.ok {
			return Success(struct{}{}, c)
		}
		var desc string
		switch {
		case c.AtEnd():
			desc = "not " + DescEndOfInput
		case o.Next.pos == c.pos:
			_, w, _ := c.Peek()
			desc = "not " + quote(c.Slice(c.pos, c.pos+w))
		default:
			desc = "not " + quote(c.Slice(c.pos, o.Next.pos))
		}
		return Failed[struct{}](Failure{At: c.pos, Expected: Expect(desc)})
	}
}

// Except matches p only where exclude does not match, e.g.
// Except(AnyRune(), Rune('"')) for any character that is not a quote.
func Except[T, X any](p Parser[T], exclude Parser[X]) Parser[T] {
	return Then(Not(exclude), p)
}
