package pcomb

import (
	"github.com/tliron/commonlog"
)

// Trace logs every attempt of p at debug level to the package logger, with
// the rule name, the offset, and whether it matched. When debug logging is
// disabled the only cost is a level check.
func Trace[T any](name string, p Parser[T]) Parser[T] {
	return TraceTo(log, name, p)
}

// TraceTo is Trace with an explicit logger.
func TraceTo[T any](logger commonlog.Logger, name string, p Parser[T]) Parser[T] {
	mustParser(p, "Trace "+name)
	return func(c Cursor) Outcome[T] {
		if !logger.AllowLevel(commonlog.Debug) {
			return p(c)
		}
		logger.Debug("enter", "rule", name, "offset", c.pos)
		o := p(c)
		if o.ok {
			logger.Debug("match", "rule", name, "offset", c.pos, "next", o.Next.pos)
		} else {
			logger.Debug("fail", "rule", name, "offset", c.pos, "at", o.Failure.At, "expected", o.Failure.Expected.String())
		}
		return o
	}
}

// Trace is shorthand for Trace(name, p).
func (p Parser[T]) Trace(name string) Parser[T] {
	return Trace(name, p)
}
