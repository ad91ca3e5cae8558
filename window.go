package parsekit

import "fmt"

// Take matches exactly n bytes, whatever they are.
func Take(n int) Parser[string] {
	label := fmt.Sprintf("%d bytes", n)
	return func(c *Cursor) Result[string] {
		if c.Remaining() < n {
			return Fail[string](NewError(c, label))
		}
		_, _, start := c.Position()
		c.Advance(n)
		_, _, end := c.Position()
		return Success(string(c.Slice(start, end)))
	}
}

// TakeWhile matches the longest run of bytes (possibly empty) for which
// pred returns true.
func TakeWhile(pred func(byte) bool) Parser[string] {
	return func(c *Cursor) Result[string] {
		_, _, start := c.Position()
		for {
			b, ok := c.Peek()
			if !ok || !pred(b) {
				break
			}
			c.Advance(1)
		}
		_, _, end := c.Position()
		return Success(string(c.Slice(start, end)))
	}
}

// TakeWhile1 is TakeWhile but fails if it cannot match at least one byte.
func TakeWhile1(label string, pred func(byte) bool) Parser[string] {
	return func(c *Cursor) Result[string] {
		_, _, start := c.Position()
		for {
			b, ok := c.Peek()
			if !ok || !pred(b) {
				break
			}
			c.Advance(1)
		}
		_, _, end := c.Position()
		if end == start {
			return Fail[string](NewError(c, label))
		}
		return Success(string(c.Slice(start, end)))
	}
}

// TakeWhileMN matches a run of bytes satisfying pred of at least atLeast
// and at most atMost bytes long.
func TakeWhileMN(atLeast, atMost int, pred func(byte) bool) Parser[string] {
	label := fmt.Sprintf("between %d and %d matching bytes", atLeast, atMost)
	return func(c *Cursor) Result[string] {
		mark := c.Mark()
		_, _, start := c.Position()
		count := 0
		for count < atMost {
			b, ok := c.Peek()
			if !ok || !pred(b) {
				break
			}
			c.Advance(1)
			count++
		}
		if count < atLeast {
			c.Restore(mark)
			return Fail[string](NewError(c, label))
		}
		_, _, end := c.Position()
		return Success(string(c.Slice(start, end)))
	}
}

// TakeUntil matches every byte up to (but not including) the first
// position where p would succeed. It fails if p never matches before the
// end of input, or if it matches at the very first position (nothing to
// take). On failure the cursor is left where it was on entry.
func TakeUntil[O any](p Parser[O]) Parser[string] {
	return func(c *Cursor) Result[string] {
		begin := c.Mark()
		_, _, start := c.Position()
		for {
			mark := c.Mark()
			res := p(c)
			c.Restore(mark)
			if res.Err == nil {
				_, _, end := c.Position()
				if end == start {
					return Fail[string](NewError(c, "non-empty span before delimiter"))
				}
				return Success(string(c.Slice(start, end)))
			}
			if c.AtEnd() {
				err := NewError(c, "delimiter")
				c.Restore(begin)
				return Fail[string](err)
			}
			c.Advance(1)
		}
	}
}

// TakeWhileOneOf matches a run of one or more bytes present in set.
func TakeWhileOneOf(set string) Parser[string] {
	label := fmt.Sprintf("chars(%s)", set)
	return func(c *Cursor) Result[string] {
		_, _, start := c.Position()
		for {
			b, ok := c.Peek()
			if !ok || indexByte(set, b) < 0 {
				break
			}
			c.Advance(1)
		}
		_, _, end := c.Position()
		if end == start {
			return Fail[string](NewError(c, label))
		}
		return Success(string(c.Slice(start, end)))
	}
}
