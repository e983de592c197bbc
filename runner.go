package pcomb

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger(LoggerName)

///////////////////////////////////////////////////////////////////////////////
// Runner
///////////////////////////////////////////////////////////////////////////////

// RunnerOpts configures a Runner. The zero value is a strict runner that
// logs to the package logger.
type RunnerOpts struct {
	// AllowTrailing accepts a successful match that leaves part of the input
	// unconsumed. Without it such a parse fails with a TrailingInput
	// diagnostic.
	AllowTrailing bool
	// Logger receives run-level debug messages. Defaults to the "pcomb"
	// logger.
	Logger commonlog.Logger
}

// Runner drives a complete grammar over whole inputs. A Runner holds no
// per-run state and may be used from several goroutines at once.
type Runner[T any] struct {
	grammar Parser[T]
	opts    RunnerOpts
	log     commonlog.Logger
}

// NewRunner returns a runner for grammar.
func NewRunner[T any](grammar Parser[T], opts RunnerOpts) *Runner[T] {
	mustParser(grammar, "NewRunner")
	logger := opts.Logger
	if logger == nil {
		logger = log
	}
	return &Runner[T]{
		grammar: grammar,
		opts:    opts,
		log:     logger,
	}
}

// Parse runs the grammar on input. On failure the error is a *Diagnostic.
func (r *Runner[T]) Parse(input string) (T, error) {
	var zero T

	rs := &runState{}
	root := Cursor{input: input, run: rs}
	o := r.grammar(root)
	if r.log.AllowLevel(commonlog.Debug) {
		r.log.Debug("parse finished", "length", len(input), "matched", o.ok, "memo.hits", rs.hits, "memo.misses", rs.misses)
	}

	if !o.ok {
		return zero, newDiagnostic(input, o.Failure, MatchFailure)
	}

	if !r.opts.AllowTrailing && !o.Next.AtEnd() {
		end := Failure{At: o.Next.pos, Expected: Expect(DescEndOfInput)}
		if o.Failure.At == end.At && len(o.Failure.Causes) == 0 {
			end = end.Merge(o.Failure)
		}
		d := newDiagnostic(input, end, TrailingInput)
		r.log.Info("rejected trailing input", "offset", d.Offset, "remaining", o.Next.Remaining())
		return zero, d
	}
	return o.Value, nil
}

// ParseBytes is Parse for byte input.
func (r *Runner[T]) ParseBytes(input []byte) (T, error) {
	return r.Parse(string(input))
}

// Parse runs grammar on input. Unless allowTrailing is set, the grammar must
// consume the whole input.
func Parse[T any](grammar Parser[T], input string, allowTrailing bool) (T, error) {
	return NewRunner(grammar, RunnerOpts{AllowTrailing: allowTrailing}).Parse(input)
}
