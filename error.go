package parsekit

import (
	"fmt"
	"sort"
	"strings"
)

// Error is the value produced by a failed parse. It carries the position
// of the failure, the byte that was found there (or an end-of-input flag),
// and the set of token descriptions that would have allowed parsing to
// continue — the "expected set" from the package doc's error model.
//
// A non-nil Err wraps a genuine failure reason (a conversion error from a
// Map callback, typically) and marks the Error as fatal: IsFatal reports
// true, and Else/Or will not try a sibling branch after a
// fatal failure.
type Error struct {
	Filename   string
	Line       int
	Col        int
	Offset     int
	Unexpected byte
	AtEOI      bool
	Expected   map[string]struct{}
	Err        error
}

// NewError builds a passive parse error at the cursor's current position:
// this parser didn't match, but siblings may still be tried.
func NewError(c *Cursor, expected ...string) *Error {
	line, col, offset := c.Position()
	e := &Error{
		Filename: c.Filename,
		Line:     line,
		Col:      col,
		Offset:   offset,
		Expected: make(map[string]struct{}, len(expected)),
	}
	if b, ok := c.Peek(); ok {
		e.Unexpected = b
	} else {
		e.AtEOI = true
	}
	for _, x := range expected {
		e.Expected[x] = struct{}{}
	}
	return e
}

// NewFatalError builds a fatal parse error wrapping cause: parsing matched
// a shape but the content was invalid, and no sibling branch should be
// tried. cause is returned unchanged by Unwrap.
func NewFatalError(c *Cursor, cause error, expected ...string) *Error {
	e := NewError(c, expected...)
	e.Err = cause
	return e
}

// IsFatal reports whether this error should stop Else/Or from
// trying any further branch.
func (e *Error) IsFatal() bool {
	return e.Err != nil
}

// Unwrap returns the wrapped cause of a fatal error, or nil.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExpectedList returns the expected set as a sorted slice, for deterministic
// messages and tests.
func (e *Error) ExpectedList() []string {
	out := make([]string, 0, len(e.Expected))
	for k := range e.Expected {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// merge combines two errors reported at the same evaluator boundary,
// implementing the rightmost-failure rule: the error at the greater offset
// wins outright; at equal offsets the expected sets are unioned.
func (e *Error) merge(other *Error) *Error {
	if other == nil {
		return e
	}
	if e == nil {
		return other
	}
	if other.Offset > e.Offset {
		return other
	}
	if e.Offset > other.Offset {
		return e
	}

	merged := &Error{
		Filename:   e.Filename,
		Line:       e.Line,
		Col:        e.Col,
		Offset:     e.Offset,
		Unexpected: e.Unexpected,
		AtEOI:      e.AtEOI,
		Expected:   make(map[string]struct{}, len(e.Expected)+len(other.Expected)),
	}
	for k := range e.Expected {
		merged.Expected[k] = struct{}{}
	}
	for k := range other.Expected {
		merged.Expected[k] = struct{}{}
	}
	return merged
}

// unexpectedRendering renders the unexpected byte the way Error's message
// format requires: "end of input" at EOI, an escaped form for control
// characters, the literal character otherwise.
func (e *Error) unexpectedRendering() string {
	if e.AtEOI {
		return "end of input"
	}
	switch e.Unexpected {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	}
	if e.Unexpected < 0x20 || e.Unexpected == 0x7f {
		return fmt.Sprintf(`\x%02x`, e.Unexpected)
	}
	return string(e.Unexpected)
}

// joinExpected renders an expected set as "a", "a or b", or "a, b or c".
func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "<nothing>"
	case 1:
		return expected[0]
	case 2:
		return expected[0] + " or " + expected[1]
	default:
		return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
	}
}

// Error renders the canonical message format:
//
//	<filename>:<line>:<column>: error: expected <E1>, <E2>, … or <En> at '<c>'
func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: error: expected %s at '%s'",
		e.Filename, e.Line, e.Col, joinExpected(e.ExpectedList()), e.unexpectedRendering())
}
