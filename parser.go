// Package parsekit implements a small parser-combinator core: character
// and string primitives, sequencing, alternation, repetition and lookahead
// combinators, composed over a position-tracking Cursor with cheap
// backtracking and an error model that merges sibling failures into a
// single "expected A, B or C at line:col" message.
//
// N.B: the combinator algebra and naming here closely follow
// github.com/oleiade/gomme; the Cursor this package runs parsers over,
// and the O(1) mark/restore discipline it gives every combinator, are this
// package's own addition.
package parsekit

import "os"

// Parser is the common signature of every combinator: given a cursor, it
// either succeeds with a value (possibly advancing the cursor) or fails
// with an error (leaving the cursor wherever the failed attempt left it —
// see the backtracking discipline documented on Else, Many and friends).
type Parser[O any] func(c *Cursor) Result[O]

// Result is what a Parser produces. Exactly one of Err being nil or
// non-nil determines success or failure; Value is meaningless on failure.
type Result[O any] struct {
	Value O
	Err   *Error
}

// Success builds a successful Result.
func Success[O any](value O) Result[O] {
	return Result[O]{Value: value}
}

// Fail builds a failed Result from a non-nil error.
func Fail[O any](err *Error) Result[O] {
	return Result[O]{Err: err}
}

// Rule is a named, retained parser: created undefined, given a body with
// Define exactly once, and referenced by other parsers through P before or
// after that definition happens. This is what makes recursive and mutually
// recursive grammars possible — a Rule's P() method closes over the Rule
// itself, not over its (possibly not-yet-set) body, so it is safe to wire
// a Rule into other parsers before calling Define as long as no one
// actually runs the parser before Define has happened.
type Rule[O any] struct {
	name string
	body Parser[O]
}

// NewRule creates an undefined retained parser named name. name is used
// only in the panic message if the rule is used before being defined; it
// plays no role in parsing.
func NewRule[O any](name string) *Rule[O] {
	return &Rule[O]{name: name}
}

// Define gives r its body. Defining a Rule twice is a usage error (spec's
// "programmer error", not a parse failure) and panics.
func (r *Rule[O]) Define(body Parser[O]) *Rule[O] {
	if r.body != nil {
		panic("parsekit: rule " + r.name + " already defined")
	}
	r.body = body
	return r
}

// Undefine severs r's reference to its body, breaking any reference cycle
// running through r so the rule graph can be garbage collected. It is safe
// to call on a Rule that was never defined.
func (r *Rule[O]) Undefine() {
	r.body = nil
}

// P returns the parser value for r. Evaluating it before Define has run
// panics; composing it into other parsers before Define is fine.
func (r *Rule[O]) P() Parser[O] {
	return func(c *Cursor) Result[O] {
		if r.body == nil {
			panic("parsekit: rule " + r.name + " used before being defined")
		}
		return r.body(c)
	}
}

// Undefinable is implemented by every *Rule[O], letting Cleanup accept a
// heterogeneous list of rules with different output types.
type Undefinable interface {
	Undefine()
}

// Cleanup undefines every rule passed to it. It is the idiomatic
// replacement for the host-language "undefine then delete every parser in
// this cycle" convention: in a garbage-collected language there is nothing
// left to free once the cycle is broken.
func Cleanup(rules ...Undefinable) {
	for _, r := range rules {
		r.Undefine()
	}
}

// Parse runs p against input, labelling it filename for error messages.
func Parse[O any](filename string, input []byte, p Parser[O]) (O, error) {
	c := NewCursor(filename, input)
	res := p(c)
	if res.Err != nil {
		var zero O
		return zero, res.Err
	}
	return res.Value, nil
}

// ParseString is Parse for a string input.
func ParseString[O any](filename, input string, p Parser[O]) (O, error) {
	return Parse(filename, []byte(input), p)
}

// ParseFile reads path into memory and parses it with p, labelling errors
// with path itself.
func ParseFile[O any](path string, p Parser[O]) (O, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var zero O
		return zero, err
	}
	return Parse(path, data, p)
}
