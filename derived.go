package parsekit

// Start requires p to match starting exactly at the start of input.
func Start[O any](p Parser[O]) Parser[O] {
	return Preceded(SOI(), p)
}

// End requires p to match with nothing left over afterwards.
func End[O any](p Parser[O]) Parser[O] {
	return Terminated(p, EOI())
}

// Enclose requires p to match the entire input, start to end.
func Enclose[O any](p Parser[O]) Parser[O] {
	return Start(End(p))
}

// Strip runs p with leading and trailing whitespace discarded.
func Strip[O any](p Parser[O]) Parser[O] {
	return Terminated(Preceded(Whitespace(), p), Whitespace())
}

// Tok runs p, then discards any trailing whitespace — the building block
// for tokenizing grammars where whitespace is only ever significant as a
// separator between tokens.
func Tok[O any](p Parser[O]) Parser[O] {
	return Terminated(p, Whitespace())
}

// Sym is Tok applied to a literal string; the common case of matching a
// keyword or punctuation symbol followed by optional whitespace.
func Sym(s string) Parser[string] {
	return Tok(Literal(s))
}

// Total requires p to match the entire input once surrounding whitespace
// is stripped.
func Total[O any](p Parser[O]) Parser[O] {
	return Enclose(Strip(p))
}

// Between runs p delimited by exact open/close literals.
func Between[O any](open, close string, p Parser[O]) Parser[O] {
	return Delimited(Literal(open), p, Literal(close))
}

// Parens runs p between "(" and ")".
func Parens[O any](p Parser[O]) Parser[O] { return Between("(", ")", p) }

// Braces runs p between "{" and "}".
func Braces[O any](p Parser[O]) Parser[O] { return Between("{", "}", p) }

// Brackets runs p between "[" and "]".
func Brackets[O any](p Parser[O]) Parser[O] { return Between("[", "]", p) }

// Squares runs p between "<" and ">".
func Squares[O any](p Parser[O]) Parser[O] { return Between("<", ">", p) }

// TokBetween is Between with each delimiter wrapped in Tok, so trailing
// whitespace after either delimiter is consumed for free.
func TokBetween[O any](open, close string, p Parser[O]) Parser[O] {
	return Delimited(Tok(Literal(open)), p, Tok(Literal(close)))
}

// TokParens is Parens with Tok-wrapped delimiters.
func TokParens[O any](p Parser[O]) Parser[O] { return TokBetween("(", ")", p) }

// TokBraces is Braces with Tok-wrapped delimiters.
func TokBraces[O any](p Parser[O]) Parser[O] { return TokBetween("{", "}", p) }

// TokBrackets is Brackets with Tok-wrapped delimiters.
func TokBrackets[O any](p Parser[O]) Parser[O] { return TokBetween("[", "]", p) }

// TokSquares is Squares with Tok-wrapped delimiters.
func TokSquares[O any](p Parser[O]) Parser[O] { return TokBetween("<", ">", p) }
