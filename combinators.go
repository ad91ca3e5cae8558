package parsekit

// Expect runs p; if it fails (and the failure isn't already fatal), its
// expected set is replaced by expected. This is the "message improvement"
// hook: wrap a low-level primitive with the higher-level name a caller
// should see in an error.
func Expect[O any](p Parser[O], expected ...string) Parser[O] {
	return func(c *Cursor) Result[O] {
		res := p(c)
		if res.Err != nil && !res.Err.IsFatal() {
			replaced := *res.Err
			replaced.Expected = make(map[string]struct{}, len(expected))
			for _, x := range expected {
				replaced.Expected[x] = struct{}{}
			}
			res.Err = &replaced
		}
		return res
	}
}

// Map runs p and, on success, passes its value through f. If f returns an
// error, the whole Map fails fatally — siblings in an enclosing Else/Or
// will not be tried, since the shape matched but the content
// didn't validate.
func Map[A, O any](p Parser[A], f func(A) (O, error)) Parser[O] {
	return func(c *Cursor) Result[O] {
		ra := p(c)
		if ra.Err != nil {
			return Fail[O](ra.Err)
		}
		out, err := f(ra.Value)
		if err != nil {
			return Fail[O](NewFatalError(c, err))
		}
		return Success(out)
	}
}

// MapCtx is Map with an additional, caller-supplied context value threaded
// into f, for transforms that need more than the matched value alone.
func MapCtx[A, O, Ctx any](p Parser[A], ctx Ctx, f func(A, Ctx) (O, error)) Parser[O] {
	return Map(p, func(a A) (O, error) { return f(a, ctx) })
}

// Assign runs p and, on success, discards its value in favor of the
// constant v.
func Assign[O, A any](v O, p Parser[A]) Parser[O] {
	return Map(p, func(A) (O, error) { return v, nil })
}

// NotElse succeeds, without consuming input, iff p fails; on success it
// yields lf() instead of p's value, which is discarded. Used for pure
// lookahead assertions ("not followed by").
func NotElse[A, O any](p Parser[A], label string, lf func() O) Parser[O] {
	return func(c *Cursor) Result[O] {
		mark := c.Mark()
		res := p(c)
		c.Restore(mark)
		if res.Err == nil {
			return Fail[O](NewError(c, label))
		}
		return Success(lf())
	}
}

// Not is NotElse with a nil payload.
func Not[A any](p Parser[A], label string) Parser[any] {
	return NotElse[A, any](p, label, func() any { return nil })
}

// MaybeElse runs p; on failure it restores the cursor and succeeds with
// lf() instead of failing.
func MaybeElse[O any](p Parser[O], lf func() O) Parser[O] {
	return func(c *Cursor) Result[O] {
		mark := c.Mark()
		res := p(c)
		if res.Err != nil {
			c.Restore(mark)
			return Success(lf())
		}
		return res
	}
}

// Maybe is MaybeElse with the zero value of O as the fallback.
func Maybe[O any](p Parser[O]) Parser[O] {
	var zero O
	return MaybeElse(p, func() O { return zero })
}

// ManyElse applies p repeatedly, accumulating results with fold starting
// from lf(). It always succeeds, even matching zero elements — except that
// it fails if p ever succeeds without consuming input, since that would
// loop forever.
func ManyElse[A, O any](p Parser[A], fold func(O, A) O, lf func() O) Parser[O] {
	return func(c *Cursor) Result[O] {
		acc := lf()
		for {
			mark := c.Mark()
			res := p(c)
			if res.Err != nil {
				c.Restore(mark)
				return Success(acc)
			}
			if c.offset == mark.offset {
				return Fail[O](NewError(c, "many: parser matched without consuming input"))
			}
			acc = fold(acc, res.Value)
		}
	}
}

// Many is ManyElse with the zero value of O as the starting accumulator.
func Many[A, O any](p Parser[A], fold func(O, A) O) Parser[O] {
	var zero O
	return ManyElse(p, fold, func() O { return zero })
}

// Many1 is Many, but fails if p cannot match at least once.
func Many1[A, O any](p Parser[A], fold func(O, A) O) Parser[O] {
	var zero O
	return func(c *Cursor) Result[O] {
		mark := c.Mark()
		first := p(c)
		if first.Err != nil {
			return Fail[O](first.Err)
		}
		if c.offset == mark.offset {
			return Fail[O](NewError(c, "many1: parser matched without consuming input"))
		}
		acc := fold(zero, first.Value)
		for {
			mark2 := c.Mark()
			res := p(c)
			if res.Err != nil {
				c.Restore(mark2)
				return Success(acc)
			}
			if c.offset == mark2.offset {
				return Fail[O](NewError(c, "many1: parser matched without consuming input"))
			}
			acc = fold(acc, res.Value)
		}
	}
}

// CountElse applies p exactly n times, folding results starting from lf().
// A partial match (p fails before n repetitions) fails the whole count.
func CountElse[A, O any](p Parser[A], n int, fold func(O, A) O, lf func() O) Parser[O] {
	return func(c *Cursor) Result[O] {
		acc := lf()
		for i := 0; i < n; i++ {
			res := p(c)
			if res.Err != nil {
				return Fail[O](res.Err)
			}
			acc = fold(acc, res.Value)
		}
		return Success(acc)
	}
}

// Count is CountElse with the zero value of O as the starting accumulator.
func Count[A, O any](p Parser[A], n int, fold func(O, A) O) Parser[O] {
	var zero O
	return CountElse(p, n, fold, func() O { return zero })
}

// SkipMany applies p zero or more times, discarding every result.
func SkipMany[A any](p Parser[A]) Parser[struct{}] {
	return Many(p, func(acc struct{}, _ A) struct{} { return acc })
}

// SkipMany1 applies p one or more times, discarding every result.
func SkipMany1[A any](p Parser[A]) Parser[struct{}] {
	return Many1(p, func(acc struct{}, _ A) struct{} { return acc })
}
