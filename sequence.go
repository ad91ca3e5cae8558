package parsekit

// Then sequences two parsers, combining their values with fold. This is
// the core's "also": if a fails, its failure (and whatever it consumed) is
// returned as-is; if a succeeds and b then fails, b's failure (and the
// combined consumption of both attempts) is returned — the sequence does
// not restore what a consumed, per the backtracking discipline's
// exception for direct children of sequencing combinators.
func Then[A, B, O any](a Parser[A], b Parser[B], fold func(A, B) O) Parser[O] {
	return func(c *Cursor) Result[O] {
		ra := a(c)
		if ra.Err != nil {
			return Fail[O](ra.Err)
		}
		rb := b(c)
		if rb.Err != nil {
			return Fail[O](rb.Err)
		}
		return Success(fold(ra.Value, rb.Value))
	}
}

// Bind is identical to Then; the name is kept for symmetry with
// applicative/monadic combinator naming, as the teacher does.
func Bind[A, B, O any](a Parser[A], b Parser[B], fold func(A, B) O) Parser[O] {
	return Then(a, b, fold)
}

// PairContainer holds the two results of a Pair or SeparatedPair.
type PairContainer[L, R any] struct {
	Left  L
	Right R
}

// NewPairContainer builds a PairContainer from its two elements.
func NewPairContainer[L, R any](left L, right R) PairContainer[L, R] {
	return PairContainer[L, R]{Left: left, Right: right}
}

// Pair sequences two parsers and returns both of their values.
func Pair[L, R any](left Parser[L], right Parser[R]) Parser[PairContainer[L, R]] {
	return Then(left, right, func(l L, r R) PairContainer[L, R] {
		return PairContainer[L, R]{Left: l, Right: r}
	})
}

// SeparatedPair sequences a left parser, a separator (whose value is
// discarded) and a right parser, returning the left and right values.
func SeparatedPair[L, S, R any](left Parser[L], sep Parser[S], right Parser[R]) Parser[PairContainer[L, R]] {
	return func(c *Cursor) Result[PairContainer[L, R]] {
		rl := left(c)
		if rl.Err != nil {
			return Fail[PairContainer[L, R]](rl.Err)
		}
		rs := sep(c)
		if rs.Err != nil {
			return Fail[PairContainer[L, R]](rs.Err)
		}
		rr := right(c)
		if rr.Err != nil {
			return Fail[PairContainer[L, R]](rr.Err)
		}
		return Success(PairContainer[L, R]{Left: rl.Value, Right: rr.Value})
	}
}

// Preceded runs prefix, discards its value, then runs and returns p.
func Preceded[P, O any](prefix Parser[P], p Parser[O]) Parser[O] {
	return func(c *Cursor) Result[O] {
		rp := prefix(c)
		if rp.Err != nil {
			return Fail[O](rp.Err)
		}
		return p(c)
	}
}

// Terminated runs p, then runs suffix and discards its value, returning
// p's value.
func Terminated[O, S any](p Parser[O], suffix Parser[S]) Parser[O] {
	return func(c *Cursor) Result[O] {
		rp := p(c)
		if rp.Err != nil {
			return Fail[O](rp.Err)
		}
		rs := suffix(c)
		if rs.Err != nil {
			return Fail[O](rs.Err)
		}
		return Success(rp.Value)
	}
}

// Delimited runs prefix (discarded), then p, then suffix (discarded),
// returning p's value.
func Delimited[P, O, S any](prefix Parser[P], p Parser[O], suffix Parser[S]) Parser[O] {
	return Terminated(Preceded(prefix, p), suffix)
}

// Sequence runs every parser in order, collecting their values into a
// slice. If any parser fails, the whole sequence fails.
func Sequence[O any](parsers ...Parser[O]) Parser[[]O] {
	return func(c *Cursor) Result[[]O] {
		out := make([]O, 0, len(parsers))
		for _, p := range parsers {
			res := p(c)
			if res.Err != nil {
				return Fail[[]O](res.Err)
			}
			out = append(out, res.Value)
		}
		return Success(out)
	}
}

// And is Sequence followed by a whole-array fold, matching the core's
// n-ary "and" combinator: fold receives every matched value at once and
// produces the sequence's single result.
func And[O, R any](fold func([]O) R, parsers ...Parser[O]) Parser[R] {
	return Map(Sequence(parsers...), func(vs []O) (R, error) { return fold(vs), nil })
}

// Separator is any value a separator parser between list elements may
// produce; it always exists solely to be discarded.
type Separator any

// SeparatedList0 applies element repeatedly, separated by sep, producing a
// slice of elements. It succeeds (with an empty slice) even if element
// never matches, but fails if the first element matches without consuming
// input, or if the separator matches without consuming input.
func SeparatedList0[O, S any](element Parser[O], sep Parser[S]) Parser[[]O] {
	return func(c *Cursor) Result[[]O] {
		out := []O{}

		mark := c.Mark()
		res := element(c)
		if res.Err != nil {
			c.Restore(mark)
			return Success(out)
		}
		if c.offset == mark.offset {
			return Fail[[]O](NewError(c, "SeparatedList0: element matched without consuming input"))
		}
		out = append(out, res.Value)

		for {
			sepMark := c.Mark()
			sres := sep(c)
			if sres.Err != nil {
				c.Restore(sepMark)
				return Success(out)
			}
			if c.offset == sepMark.offset {
				return Fail[[]O](NewError(c, "SeparatedList0: separator matched without consuming input"))
			}

			eres := element(c)
			if eres.Err != nil {
				c.Restore(sepMark)
				return Success(out)
			}
			out = append(out, eres.Value)
		}
	}
}

// SeparatedList1 is SeparatedList0, but fails if element cannot match at
// least once.
func SeparatedList1[O, S any](element Parser[O], sep Parser[S]) Parser[[]O] {
	return func(c *Cursor) Result[[]O] {
		mark := c.Mark()
		res := element(c)
		if res.Err != nil {
			return Fail[[]O](res.Err)
		}
		if c.offset == mark.offset {
			return Fail[[]O](NewError(c, "SeparatedList1: element matched without consuming input"))
		}
		out := []O{res.Value}

		for {
			sepMark := c.Mark()
			sres := sep(c)
			if sres.Err != nil {
				c.Restore(sepMark)
				return Success(out)
			}
			if c.offset == sepMark.offset {
				return Fail[[]O](NewError(c, "SeparatedList1: separator matched without consuming input"))
			}

			eres := element(c)
			if eres.Err != nil {
				c.Restore(sepMark)
				return Success(out)
			}
			out = append(out, eres.Value)
		}
	}
}
