package parsekit

import "fmt"

// Any matches a single byte, whatever it is.
func Any() Parser[string] {
	return func(c *Cursor) Result[string] {
		b, ok := c.Peek()
		if !ok {
			return Fail[string](NewError(c, "any character"))
		}
		c.Advance(1)
		return Success(string(b))
	}
}

// CharByte matches a single, specific byte.
func CharByte(ch byte) Parser[string] {
	label := string(ch)
	return func(c *Cursor) Result[string] {
		b, ok := c.Peek()
		if !ok || b != ch {
			return Fail[string](NewError(c, label))
		}
		c.Advance(1)
		return Success(label)
	}
}

// ByteRange matches a single byte in [lo, hi] inclusive.
func ByteRange(lo, hi byte) Parser[string] {
	label := fmt.Sprintf("%c-%c", lo, hi)
	return func(c *Cursor) Result[string] {
		b, ok := c.Peek()
		if !ok || b < lo || b > hi {
			return Fail[string](NewError(c, label))
		}
		c.Advance(1)
		return Success(string(b))
	}
}

// OneOf matches a single byte that appears in set.
func OneOf(set string) Parser[string] {
	label := fmt.Sprintf("one of %q", set)
	return func(c *Cursor) Result[string] {
		b, ok := c.Peek()
		if !ok || indexByte(set, b) < 0 {
			return Fail[string](NewError(c, label))
		}
		c.Advance(1)
		return Success(string(b))
	}
}

// NoneOf matches a single byte that does not appear in set.
func NoneOf(set string) Parser[string] {
	label := fmt.Sprintf("none of %q", set)
	return func(c *Cursor) Result[string] {
		b, ok := c.Peek()
		if !ok || indexByte(set, b) >= 0 {
			return Fail[string](NewError(c, label))
		}
		c.Advance(1)
		return Success(string(b))
	}
}

// Satisfy matches a single byte for which pred returns true. label names
// the class of byte being matched, for error messages.
func Satisfy(label string, pred func(byte) bool) Parser[string] {
	return func(c *Cursor) Result[string] {
		b, ok := c.Peek()
		if !ok || !pred(b) {
			return Fail[string](NewError(c, label))
		}
		c.Advance(1)
		return Success(string(b))
	}
}

// Literal matches an exact byte sequence.
func Literal(tag string) Parser[string] {
	return func(c *Cursor) Result[string] {
		if c.Remaining() < len(tag) {
			return Fail[string](NewError(c, tag))
		}
		for i := 0; i < len(tag); i++ {
			b, _ := c.PeekAt(i)
			if b != tag[i] {
				return Fail[string](NewError(c, tag))
			}
		}
		c.Advance(len(tag))
		return Success(tag)
	}
}

// Pass always succeeds without consuming input, yielding nil.
func Pass() Parser[any] {
	return func(c *Cursor) Result[any] {
		return Success[any](nil)
	}
}

// FailWith never succeeds; msg becomes the sole entry of its expected set.
func FailWith[O any](msg string) Parser[O] {
	return func(c *Cursor) Result[O] {
		return Fail[O](NewError(c, msg))
	}
}

// Lift always succeeds without consuming input, yielding f().
func Lift[O any](f func() O) Parser[O] {
	return func(c *Cursor) Result[O] {
		return Success(f())
	}
}

// LiftValue always succeeds without consuming input, yielding v.
func LiftValue[O any](v O) Parser[O] {
	return func(c *Cursor) Result[O] {
		return Success(v)
	}
}

// EOI succeeds only at end of input.
func EOI() Parser[any] {
	return func(c *Cursor) Result[any] {
		if !c.AtEnd() {
			return Fail[any](NewError(c, "end of input"))
		}
		return Success[any](nil)
	}
}

// SOI succeeds only at the very start of input.
func SOI() Parser[any] {
	return func(c *Cursor) Result[any] {
		if !c.AtStart() {
			return Fail[any](NewError(c, "start of input"))
		}
		return Success[any](nil)
	}
}

// Character classes, grounded on the teacher's characters.go.

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// IsAlphaNumeric reports whether b is an ASCII letter or digit.
func IsAlphaNumeric(b byte) bool { return IsAlpha(b) || IsDigit(b) }

// IsHexDigit reports whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsSpaceOrTab reports whether b is an ASCII space or tab.
func IsSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

// Digit matches a single decimal digit.
func Digit() Parser[string] { return Satisfy("digit", IsDigit) }

// Alpha matches a single ASCII letter.
func Alpha() Parser[string] { return Satisfy("alpha", IsAlpha) }

// AlphaNumeric matches a single ASCII letter or digit.
func AlphaNumeric() Parser[string] { return Satisfy("alphanumeric", IsAlphaNumeric) }

// Space matches a single space character.
func Space() Parser[string] { return CharByte(' ') }

// Tab matches a single tab character.
func Tab() Parser[string] { return CharByte('\t') }

// LF matches a line feed.
func LF() Parser[string] { return CharByte('\n') }

// CR matches a carriage return.
func CR() Parser[string] { return CharByte('\r') }

// CRLF matches the two byte sequence "\r\n".
func CRLF() Parser[string] { return Literal("\r\n") }

// Newline matches either LF or CRLF.
func Newline() Parser[string] {
	return Expect(Or(LF(), CRLF()), "new line")
}

// Whitespace matches zero or more spaces, tabs, carriage returns or
// newlines, always succeeding (possibly with the empty string).
func Whitespace() Parser[string] {
	return func(c *Cursor) Result[string] {
		_, _, startOffset := c.Position()
		for {
			b, ok := c.Peek()
			if !ok || (b != ' ' && b != '\t' && b != '\r' && b != '\n') {
				break
			}
			c.Advance(1)
		}
		_, _, end := c.Position()
		return Success(string(c.Slice(startOffset, end)))
	}
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
