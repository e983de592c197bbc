package pcomb

import "errors"

// Logger name used by the package logger and by Trace.
const LoggerName = "pcomb"

// Descriptions used by the built-in primitives when reporting what was
// expected at a failure position.
const (
	DescEndOfInput = "end of input"
	DescAnyRune    = "any character"
	DescWhitespace = "whitespace"
	DescDigit      = "digit"
	DescHexDigit   = "hex digit"
	DescInteger    = "integer"
	DescUnsigned   = "unsigned integer"
	DescFloat      = "number"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// Errors reported to callers of Parse through a Diagnostic.
var (
	ErrMatchFailure  = errors.New("input did not match grammar")
	ErrTrailingInput = errors.New("unexpected trailing input")
)

// Grammar construction errors. These are never returned from a parse: a
// parser built with an invalid configuration panics with one of them wrapped,
// since it is a bug in the grammar and not a property of the input.
var (
	ErrEmptyLiteral       = errors.New("literal must not be empty")
	ErrMissingDescription = errors.New("expectation description must not be empty")
	ErrInvalidRange       = errors.New("invalid rune range")
	ErrInvalidRepeat      = errors.New("invalid repeat specification")
	ErrEmptyChoice        = errors.New("choice needs at least one alternative")
	ErrNilParser          = errors.New("parser must not be nil")
	ErrUndefinedRule      = errors.New("rule used before it was defined")
	ErrRuleRedefined      = errors.New("rule already defined")
	ErrRuleTypeMismatch   = errors.New("rule already registered with a different type")
	ErrCursorOutOfRange   = errors.New("cursor moved outside of input")
)
