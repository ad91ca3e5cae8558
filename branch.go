package parsekit

// Else implements alternation: run a; if it fails without having consumed
// any input, restore the cursor and run b, merging the two errors on total
// failure (rightmost-failure rule, see Error.merge). If a fails after
// consuming input, the choice is committed — b is never tried, and a's
// error is returned as-is. This is the one place a caller must reach for
// Maybe (or left-factor their grammar) to get full backtracking across an
// ambiguous prefix.
//
// A fatal error (one wrapping a genuine content failure via Map) is always
// committed, consumed or not: NewFatalError errors are never merged with
// a sibling, they propagate immediately.
func Else[O any](a, b Parser[O]) Parser[O] {
	return func(c *Cursor) Result[O] {
		mark := c.Mark()
		ra := a(c)
		if ra.Err == nil {
			return ra
		}
		if ra.Err.IsFatal() {
			return ra
		}
		if c.offset != mark.offset {
			return ra
		}

		c.Restore(mark)
		rb := b(c)
		if rb.Err == nil {
			return rb
		}
		if rb.Err.IsFatal() {
			return rb
		}
		return Fail[O](ra.Err.merge(rb.Err))
	}
}

// Or is the n-ary form of Else: Or(p1, ..., pn) is equivalent to
// left-associated Else(Else(p1, p2), p3) and so on.
func Or[O any](parsers ...Parser[O]) Parser[O] {
	if len(parsers) == 0 {
		panic("parsekit: Or requires at least one parser")
	}
	result := parsers[0]
	for _, p := range parsers[1:] {
		result = Else(result, p)
	}
	return result
}
