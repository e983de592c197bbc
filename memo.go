package pcomb

import "sync/atomic"

// runState is the state of a single parse run. The Runner attaches a fresh
// one to the root Cursor, and every Cursor derived from it shares it. It is
// never shared between runs, so it needs no locking.
type runState struct {
	memo   map[memoKey]any
	hits   int
	misses int
}

type memoKey struct {
	id  uint64
	pos int
}

var memoIDs atomic.Uint64

func (rs *runState) lookup(key memoKey) (any, bool) {
	v, ok := rs.memo[key]
	if ok {
		rs.hits++
	} else {
		rs.misses++
	}
	return v, ok
}

func (rs *runState) store(key memoKey, v any) {
	if rs.memo == nil {
		rs.memo = make(map[memoKey]any)
	}
	rs.memo[key] = v
}

// Memo caches the outcome of p per input position for the duration of a
// parse run, so a rule reached again from the same position after
// backtracking is not parsed a second time. It trades memory for time on
// grammars where many alternatives share a prefix.
//
// Memoization only takes effect for cursors created by a Runner. Results are
// never shared between runs.
func Memo[T any](p Parser[T]) Parser[T] {
	mustParser(p, "Memo")
	id := memoIDs.Add(1)
	return func(c Cursor) Outcome[T] {
		if c.run == nil {
			return p(c)
		}
		key := memoKey{id: id, pos: c.pos}
		if v, ok := c.run.lookup(key); ok {
			return v.(Outcome[T])
		}
		o := p(c)
		c.run.store(key, o)
		return o
	}
}
