// Package pcomb (Parser COMBinators) is a scanner-less parser-combinator
// engine. A grammar is assembled from small typed building blocks into a
// single Parser value, which is then run over in-memory text.
//
// Building blocks come in two flavors:
//   - Primitives match input directly: Literal, LiteralFold, Satisfy, Rune,
//     RuneIn, RuneNotIn, RuneRange, AnyRune, EOF, and the text helpers
//     Digits, Int, Uint, Float, Identifier, Keyword, Unquote, Whitespace.
//   - Combinators build parsers out of parsers: Seq, Seq3, Then, Skip,
//     Between, SeqOf, PartialSeq, Choice, Many, Many1, Repeat, SepBy,
//     Optional, Default, Map, TryMap, Value, Discard, Bind, Take, Peek, Not,
//     Except, Label, Memo and Trace.
//
// Values are statically typed: Seq of a Parser[string] and a Parser[int64]
// is a Parser[Pair[string, int64]], and Map turns matched tokens into the
// caller's own types.
//
// # Backtracking
//
// Parsers thread an immutable Cursor through the input. A failed attempt
// never changes the Cursor its caller holds, so Choice simply retries the
// next alternative from the same Cursor. There is no commit or cut: every
// alternative of a Choice is tried until one matches.
//
// # Failures and diagnostics
//
// A parse attempt returns an Outcome, which is a value and the next Cursor,
// or a Failure: the position reached and the set of things expected there.
// Failures are plain values. Only Choice, Optional, the repetitions and Not
// recover from them; every other combinator passes them on.
//
// Failures merge with the furthest-failure rule. The failure furthest into
// the input wins, and failures at the same position unite their
// expectations, independent of the order alternatives were tried in.
// Successful outcomes carry the furthest failure they abandoned along the
// way, so the final diagnostic points at the furthest position any branch of
// the grammar reached.
//
// Parse and Runner.Parse turn the final outcome into a value or a
// *Diagnostic error with the offset, line, column, expectations and the
// offending line of input. Unconsumed input after a match is an error unless
// trailing input is allowed.
//
// # Recursive grammars
//
// A rule that refers to itself cannot be built eagerly. Deferred returns a
// Ref whose placeholder parser can be used right away and whose definition
// is installed later with Define. Grammar groups named Refs and checks that
// all of them were defined. Lazy defers construction of a parser to its
// first use instead.
//
// # Errors in grammars
//
// Invalid grammar construction, such as an empty literal or running a rule
// that was never defined, is a bug and not a property of the input. It
// panics with one of the Err* construction errors wrapped.
//
// # Concurrency
//
// Parsers are pure functions of the Cursor, and a finished grammar is
// immutable, so one grammar can serve any number of concurrent parses. The
// only mutable state is per run (see Memo) and the definition slot of a Ref,
// which must be written before parsing starts.
package pcomb
