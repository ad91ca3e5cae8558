// Package regex compiles a small regular-expression dialect into a
// parsekit.Parser[string], using parsekit itself to parse the pattern
// string — the compiler is a client of its own core, not a separate
// hand-rolled lexer.
package regex

import (
	"fmt"

	"github.com/oleiade/parsekit"
)

// byteRange is one item of a character class: a single byte is
// represented as {b, b}.
type byteRange struct {
	lo, hi byte
}

var escapes = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', '\\': '\\',
	'.': '.', '*': '*', '+': '+', '?': '?', '|': '|',
	'(': '(', ')': ')', '[': '[', ']': ']', '^': '^', '$': '$',
}

func concatStrings(a, b string) string { return a + b }

// attempt runs p and fully restores the cursor on any failure, regardless
// of how much input p consumed — full backtracking for the handful of
// pattern-grammar productions (like a class range) that need to try an
// alternative shape after partially matching the first.
func attempt[O any](p parsekit.Parser[O]) parsekit.Parser[O] {
	return func(c *parsekit.Cursor) parsekit.Result[O] {
		mark := c.Mark()
		res := p(c)
		if res.Err != nil {
			c.Restore(mark)
		}
		return res
	}
}

// Compile parses pattern and returns an equivalent parsekit.Parser[string].
// Supported syntax: literal bytes; escapes \n \t \r \\ \. \* \+ \? \| \(
// \) \[ \] \^ \$; "." matching any byte except '\n' (this package resolves
// the spec's open question on '.' and newlines as "excludes newline", to
// match common regex convention); character classes "[...]"/"[^...]" with
// "a-z" ranges; "^"/"$" anchors at the very start/end of pattern; postfix
// "*", "+", "?"; "|" alternation (lowest precedence, committed-choice —
// see the alt production below); "(...)" grouping.
//
// A malformed pattern is reported as a *parsekit.Error positioned inside
// the pattern string.
func Compile(pattern string) (parsekit.Parser[string], error) {
	body := pattern
	anchorStart := false
	anchorEnd := false
	if len(body) > 0 && body[0] == '^' {
		anchorStart = true
		body = body[1:]
	}
	if len(body) > 0 && body[len(body)-1] == '$' && !trailingBackslashEscaped(body[:len(body)-1]) {
		anchorEnd = true
		body = body[:len(body)-1]
	}

	alt := parsekit.NewRule[parsekit.Parser[string]]("regex-alt")
	concat := parsekit.NewRule[parsekit.Parser[string]]("regex-concat")
	postfix := parsekit.NewRule[parsekit.Parser[string]]("regex-postfix")
	atom := parsekit.NewRule[parsekit.Parser[string]]("regex-atom")
	defer parsekit.Cleanup(alt, concat, postfix, atom)

	escapedAtom := parsekit.Map(
		parsekit.Preceded(parsekit.CharByte('\\'), parsekit.Satisfy("escapable character", isEscapable)),
		func(s string) (parsekit.Parser[string], error) {
			return parsekit.CharByte(escapes[s[0]]), nil
		},
	)

	dotAtom := parsekit.Assign[parsekit.Parser[string]](
		parsekit.Satisfy("any character except newline", func(b byte) bool { return b != '\n' }),
		parsekit.CharByte('.'),
	)

	groupAtom := parsekit.Preceded(parsekit.CharByte('('), parsekit.Terminated(alt.P(), parsekit.CharByte(')')))

	classAtom := parsekit.Map(
		parsekit.Preceded(parsekit.CharByte('['), parsekit.Terminated(classBody(), parsekit.CharByte(']'))),
		func(neg negatedItems) (parsekit.Parser[string], error) {
			items := neg.items
			negated := neg.negated
			label := "character class"
			if negated {
				label = "negated character class"
			}
			pred := func(b byte) bool {
				matched := false
				for _, it := range items {
					if b >= it.lo && b <= it.hi {
						matched = true
						break
					}
				}
				if negated {
					return !matched
				}
				return matched
			}
			return parsekit.Satisfy(label, pred), nil
		},
	)

	literalAtom := parsekit.Map(
		parsekit.Satisfy("literal character", func(b byte) bool {
			switch b {
			case '.', '*', '+', '?', '|', '(', ')', '[', ']', '\\':
				return false
			default:
				return true
			}
		}),
		func(s string) (parsekit.Parser[string], error) {
			return parsekit.CharByte(s[0]), nil
		},
	)

	atom.Define(parsekit.Or(escapedAtom, dotAtom, groupAtom, classAtom, literalAtom))

	postfix.Define(func(c *parsekit.Cursor) parsekit.Result[parsekit.Parser[string]] {
		ra := atom.P()(c)
		if ra.Err != nil {
			return ra
		}
		inner := ra.Value
		for {
			b, ok := c.Peek()
			if !ok {
				break
			}
			switch b {
			case '*':
				c.Advance(1)
				inner = parsekit.Many(inner, concatStrings)
			case '+':
				c.Advance(1)
				inner = parsekit.Many1(inner, concatStrings)
			case '?':
				c.Advance(1)
				inner = parsekit.Maybe(inner)
			default:
				return parsekit.Success(inner)
			}
		}
		return parsekit.Success(inner)
	})

	concat.Define(parsekit.ManyElse(
		postfix.P(),
		func(acc, next parsekit.Parser[string]) parsekit.Parser[string] {
			return parsekit.Then(acc, next, concatStrings)
		},
		func() parsekit.Parser[string] { return parsekit.LiftValue("") },
	))

	alt.Define(parsekit.Map(
		parsekit.SeparatedList1(concat.P(), parsekit.CharByte('|')),
		func(ps []parsekit.Parser[string]) (parsekit.Parser[string], error) {
			return parsekit.Or(ps...), nil
		},
	))

	compiled, err := parsekit.ParseString("regex", body, parsekit.Enclose(alt.P()))
	if err != nil {
		return nil, err
	}

	if anchorStart {
		compiled = parsekit.Start(compiled)
	}
	if anchorEnd {
		compiled = parsekit.End(compiled)
	}
	return compiled, nil
}

// trailingBackslashEscaped reports whether s ends in a run of backslashes
// of odd length, meaning whatever directly follows s in the original
// pattern is escaped rather than a bare metacharacter (used to tell a
// real "$" end-anchor apart from an escaped "\$" literal).
func trailingBackslashEscaped(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func isEscapable(b byte) bool {
	_, ok := escapes[b]
	return ok
}

type negatedItems struct {
	negated bool
	items   []byteRange
}

// classBody parses the inside of a "[...]"/"[^...]" character class: an
// optional leading "^" negation, then one or more ranges or single chars.
func classBody() parsekit.Parser[negatedItems] {
	classChar := parsekit.Or(
		parsekit.Map(
			parsekit.Preceded(parsekit.CharByte('\\'), parsekit.Satisfy("escapable character", isEscapable)),
			func(s string) (byte, error) { return escapes[s[0]], nil },
		),
		parsekit.Map(
			parsekit.Satisfy("class character", func(b byte) bool { return b != ']' && b != '\\' }),
			func(s string) (byte, error) { return s[0], nil },
		),
	)

	classRange := attempt(parsekit.Then(
		classChar,
		parsekit.Preceded(parsekit.CharByte('-'), classChar),
		func(lo, hi byte) byteRange { return byteRange{lo, hi} },
	))
	classSingle := parsekit.Map(classChar, func(b byte) (byteRange, error) { return byteRange{b, b}, nil })
	classItem := parsekit.Else(classRange, classSingle)

	items := parsekit.Many1(classItem, func(acc []byteRange, x byteRange) []byteRange {
		return append(acc, x)
	})

	return parsekit.Then(
		parsekit.Map(parsekit.Maybe(parsekit.CharByte('^')), func(s string) (bool, error) { return s == "^", nil }),
		items,
		func(negated bool, its []byteRange) negatedItems { return negatedItems{negated: negated, items: its} },
	)
}

// MustCompile is Compile, panicking on a malformed pattern — for package
// level regexes known to be valid at init time.
func MustCompile(pattern string) parsekit.Parser[string] {
	p, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("regex: MustCompile(%q): %v", pattern, err))
	}
	return p
}
