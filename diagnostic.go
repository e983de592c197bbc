package pcomb

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DiagnosticKind tells the two ways a top-level parse can fail apart.
type DiagnosticKind int

const (
	// MatchFailure means the grammar did not match the input.
	MatchFailure DiagnosticKind = iota
	// TrailingInput means the grammar matched a strict prefix of the input
	// and trailing input was not allowed.
	TrailingInput
)

func (k DiagnosticKind) String() string {
	switch k {
	case MatchFailure:
		return "match failure"
	case TrailingInput:
		return "trailing input"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is the error returned by a failed parse. It points at the
// furthest position the parse reached and says what was expected there.
//
// Line and Column are 1-based; Column counts runes, Offset counts bytes.
type Diagnostic struct {
	Kind     DiagnosticKind
	Offset   int
	Line     int
	Column   int
	Expected Expected
	Found    string  // the rune at Offset, quoted, or "end of input"
	Snippet  string  // the line of input containing Offset
	Causes   []error // set when conversion functions rejected the input
}

func newDiagnostic(input string, f Failure, kind DiagnosticKind) *Diagnostic {
	d := &Diagnostic{
		Kind:     kind,
		Offset:   f.At,
		Expected: f.Expected,
		Causes:   f.Causes,
	}
	d.Line, d.Column, d.Snippet = locate(input, f.At)
	d.Found = DescEndOfInput
	if f.At < len(input) {
		r, _ := utf8.DecodeRuneInString(input[f.At:])
		d.Found = quote(string(r))
	}
	return d
}

// locate scans input once up to offset and returns the line and column of
// offset, and the text of that line.
func locate(input string, offset int) (line, column int, snippet string) {
	if offset > len(input) {
		offset = len(input)
	}
	line = 1
	start := 0
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			line++
			start = i + 1
		}
	}
	column = utf8.RuneCountInString(input[start:offset]) + 1

	end := strings.IndexByte(input[start:], '\n')
	if end < 0 {
		end = len(input)
	} else {
		end += start
	}
	snippet = strings.TrimSuffix(input[start:end], "\r")
	return line, column, snippet
}

// Error implements the error interface. Causes come first, followed by what
// else was expected at the same position:
//
//	1:1: reject A; reject B; expected 'x', found '1'
func (d *Diagnostic) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: ", d.Line, d.Column)
	if d.Kind == TrailingInput {
		fmt.Fprintf(&b, "%v: ", ErrTrailingInput)
	}
	for i, cause := range d.Causes {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(cause.Error())
	}
	if len(d.Causes) == 0 || !d.Expected.IsEmpty() {
		if len(d.Causes) > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "expected %s, found %s", d.Expected, d.Found)
	}
	return b.String()
}

// Unwrap exposes ErrMatchFailure or ErrTrailingInput, and the causes if any.
func (d *Diagnostic) Unwrap() []error {
	sentinel := ErrMatchFailure
	if d.Kind == TrailingInput {
		sentinel = ErrTrailingInput
	}
	return append([]error{sentinel}, d.Causes...)
}

// Format prints the error message. With the %+v verb it also prints the
// offending line with a marker under the failure position.
func (d *Diagnostic) Format(f fmt.State, verb rune) {
	fmt.Fprint(f, d.Error())
	if verb != 'v' || !f.Flag('+') {
		return
	}
	fmt.Fprintf(f, "\n%s\n%s^", d.Snippet, d.marker())
}

// marker returns the padding that puts a caret under Column, keeping tabs so
// the caret lines up with the snippet.
func (d *Diagnostic) marker() string {
	var b strings.Builder
	n := 0
	for _, r := range d.Snippet {
		if n >= d.Column-1 {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		n++
	}
	for ; n < d.Column-1; n++ {
		b.WriteByte(' ')
	}
	return b.String()
}

// AsDiagnostic returns the Diagnostic in err's chain, if any.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	ok := errors.As(err, &d)
	return d, ok
}
