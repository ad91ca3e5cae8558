// Package grammar compiles a small BNF-like grammar notation into a
// parsekit.Parser[*ast.Node]. Like the regex package, the compiler is
// implemented in terms of parsekit itself; char classes ("/.../ ") are
// delegated straight to regex.Compile.
package grammar

import (
	"fmt"

	"github.com/oleiade/parsekit"
	"github.com/oleiade/parsekit/ast"
	"github.com/oleiade/parsekit/regex"
)

// Compile parses spec and returns a parser producing *ast.Node values.
// Grammar syntax:
//
//	<name>       positional argument reference (args[i] by order of first use)
//	/.../        a character class, delegated to regex.Compile
//	"..." / '.'  literal strings and characters
//	a b          juxtaposition is sequencing
//	a | b        alternation (lowest precedence, committed-choice, see regex.Compile)
//	a* a+ a?     postfix repetition
//	( a )        grouping
//
// Whitespace between tokens is insignificant. Identifiers (inside <...>)
// match [A-Za-z_][A-Za-z0-9_]*. Each construct tags its output node so the
// rightmost "|"-segment names the production or literal that produced it.
//
// A malformed spec is reported as a *parsekit.Error positioned inside the
// spec string.
func Compile(spec string, args ...parsekit.Parser[*ast.Node]) (parsekit.Parser[*ast.Node], error) {
	b := &builder{args: args}

	alt := parsekit.NewRule[parsekit.Parser[*ast.Node]]("grammar-alt")
	concat := parsekit.NewRule[parsekit.Parser[*ast.Node]]("grammar-concat")
	postfix := parsekit.NewRule[parsekit.Parser[*ast.Node]]("grammar-postfix")
	atom := parsekit.NewRule[parsekit.Parser[*ast.Node]]("grammar-atom")
	defer parsekit.Cleanup(alt, concat, postfix, atom)

	ws := parsekit.Whitespace()

	identTail := parsekit.TakeWhile(func(c byte) bool {
		return parsekit.IsAlphaNumeric(c) || c == '_'
	})
	identHead := parsekit.Satisfy("identifier character", func(c byte) bool {
		return parsekit.IsAlpha(c) || c == '_'
	})
	ident := parsekit.Then(identHead, identTail, func(h, t string) string { return h + t })

	argAtom := parsekit.Map(
		parsekit.Tok(parsekit.Delimited(parsekit.CharByte('<'), ident, parsekit.CharByte('>'))),
		func(name string) (parsekit.Parser[*ast.Node], error) {
			return b.argByName(name)
		},
	)

	classAtom := parsekit.Map(
		parsekit.Tok(parsekit.Delimited(parsekit.CharByte('/'), parsekit.TakeUntil(parsekit.CharByte('/')), parsekit.CharByte('/'))),
		func(pattern string) (parsekit.Parser[*ast.Node], error) {
			compiled, err := regex.Compile(pattern)
			if err != nil {
				return nil, err
			}
			tag := "class|" + pattern
			return parsekit.Map(compiled, ast.Leaf(tag)), nil
		},
	)

	dqStringAtom := parsekit.Map(
		parsekit.Tok(parsekit.Delimited(parsekit.CharByte('"'), parsekit.TakeUntil(parsekit.CharByte('"')), parsekit.CharByte('"'))),
		func(lit string) (parsekit.Parser[*ast.Node], error) {
			tag := "literal|" + lit
			return parsekit.Map(parsekit.Literal(lit), ast.Leaf(tag)), nil
		},
	)

	sqStringAtom := parsekit.Map(
		parsekit.Tok(parsekit.Delimited(parsekit.CharByte('\''), parsekit.TakeUntil(parsekit.CharByte('\'')), parsekit.CharByte('\''))),
		func(lit string) (parsekit.Parser[*ast.Node], error) {
			tag := "literal|" + lit
			return parsekit.Map(parsekit.Literal(lit), ast.Leaf(tag)), nil
		},
	)

	groupAtom := parsekit.Preceded(
		parsekit.Tok(parsekit.CharByte('(')),
		parsekit.Terminated(alt.P(), parsekit.Tok(parsekit.CharByte(')'))),
	)

	atom.Define(parsekit.Or(argAtom, classAtom, dqStringAtom, sqStringAtom, groupAtom))

	postfix.Define(func(c *parsekit.Cursor) parsekit.Result[parsekit.Parser[*ast.Node]] {
		ra := atom.P()(c)
		if ra.Err != nil {
			return ra
		}
		inner := ra.Value
		for {
			// Each atom production already consumes its own trailing
			// whitespace (they're Tok-wrapped); only a quantifier symbol
			// needs its trailing whitespace consumed here explicitly.
			nb, ok := c.Peek()
			if !ok {
				break
			}
			switch nb {
			case '*':
				c.Advance(1)
				inner = ast.Repeat(inner)
			case '+':
				c.Advance(1)
				inner = ast.Repeat1(inner)
			case '?':
				c.Advance(1)
				inner = parsekit.Maybe(inner)
			default:
				return parsekit.Success(inner)
			}
			ws(c)
		}
		return parsekit.Success(inner)
	})

	concat.Define(parsekit.Map(
		parsekit.Many1(postfix.P(), func(acc []parsekit.Parser[*ast.Node], next parsekit.Parser[*ast.Node]) []parsekit.Parser[*ast.Node] {
			return append(acc, next)
		}),
		func(ps []parsekit.Parser[*ast.Node]) (parsekit.Parser[*ast.Node], error) {
			if len(ps) == 1 {
				return ps[0], nil
			}
			return ast.Concat("seq", ps...), nil
		},
	))

	altSep := parsekit.Tok(parsekit.CharByte('|'))
	alt.Define(parsekit.Map(
		parsekit.SeparatedList1(concat.P(), altSep),
		func(ps []parsekit.Parser[*ast.Node]) (parsekit.Parser[*ast.Node], error) {
			if len(ps) == 1 {
				return ps[0], nil
			}
			return ast.Alt(ps...), nil
		},
	))

	compiled, err := parsekit.ParseString("grammar", spec, parsekit.Enclose(parsekit.Strip(alt.P())))
	if err != nil {
		return nil, err
	}
	return compiled, nil
}

// builder resolves "<name>" references to positional arguments. Since the
// grammar syntax names arguments but Compile receives them positionally,
// the first occurrence of a given name fixes its argument index, and every
// later occurrence of the same name reuses the argument bound to that
// index. A name whose index is past the end of args is reported by Compile
// as a construction error.
type builder struct {
	args  []parsekit.Parser[*ast.Node]
	names []string
}

func (b *builder) argByName(name string) (parsekit.Parser[*ast.Node], error) {
	for i, n := range b.names {
		if n == name {
			if i >= len(b.args) {
				return nil, fmt.Errorf("grammar: <%s> refers to argument %d but only %d were given", name, i, len(b.args))
			}
			return b.args[i], nil
		}
	}
	idx := len(b.names)
	b.names = append(b.names, name)
	if idx >= len(b.args) {
		return nil, fmt.Errorf("grammar: <%s> refers to argument %d but only %d were given", name, idx, len(b.args))
	}
	return b.args[idx], nil
}
