package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThen(t *testing.T) {
	t.Parallel()

	p := Then(CharByte('a'), CharByte('b'), concatFold)

	v, err, rem := runP(p, "abc")
	assert.NoError(t, err)
	assert.Equal(t, "ab", v)
	assert.Equal(t, "c", rem)

	_, err, _ = runP(p, "ax")
	assert.Error(t, err)
}

func TestPair(t *testing.T) {
	t.Parallel()

	p := Pair(Digit(), Alpha())

	v, err, rem := runP(p, "5xz")
	assert.NoError(t, err)
	assert.Equal(t, "5", v.Left)
	assert.Equal(t, "x", v.Right)
	assert.Equal(t, "z", rem)
}

func TestSeparatedPair(t *testing.T) {
	t.Parallel()

	p := SeparatedPair(Digit(), CharByte(':'), Alpha())

	v, err, rem := runP(p, "5:xz")
	assert.NoError(t, err)
	assert.Equal(t, "5", v.Left)
	assert.Equal(t, "x", v.Right)
	assert.Equal(t, "z", rem)

	_, err, _ = runP(p, "5xz")
	assert.Error(t, err)
}

func TestPrecededTerminatedDelimited(t *testing.T) {
	t.Parallel()

	pre := Preceded(CharByte('('), Digit())
	v, err, rem := runP(pre, "(5)")
	assert.NoError(t, err)
	assert.Equal(t, "5", v)
	assert.Equal(t, ")", rem)

	term := Terminated(Digit(), CharByte(')'))
	v, err, rem = runP(term, "5)")
	assert.NoError(t, err)
	assert.Equal(t, "5", v)
	assert.Equal(t, "", rem)

	del := Delimited(CharByte('('), Digit(), CharByte(')'))
	v, err, rem = runP(del, "(5)x")
	assert.NoError(t, err)
	assert.Equal(t, "5", v)
	assert.Equal(t, "x", rem)
}

func TestSequence(t *testing.T) {
	t.Parallel()

	p := Sequence(Digit(), Digit(), Digit())

	v, err, rem := runP(p, "123abc")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, v)
	assert.Equal(t, "abc", rem)

	_, err, _ = runP(p, "12x")
	assert.Error(t, err)
}

func TestAnd(t *testing.T) {
	t.Parallel()

	join := func(vs []string) string {
		out := ""
		for _, v := range vs {
			out += v
		}
		return out
	}
	p := And(join, Digit(), Digit())

	v, err, _ := runP(p, "12")
	assert.NoError(t, err)
	assert.Equal(t, "12", v)
}

func TestSeparatedList0(t *testing.T) {
	t.Parallel()

	p := SeparatedList0(Digit(), CharByte(','))

	v, err, rem := runP(p, "1,2,3;")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, v)
	assert.Equal(t, ";", rem)

	v, err, rem = runP(p, "abc")
	assert.NoError(t, err)
	assert.Equal(t, []string{}, v)
	assert.Equal(t, "abc", rem)
}

func TestSeparatedList1(t *testing.T) {
	t.Parallel()

	p := SeparatedList1(Digit(), CharByte(','))

	v, err, rem := runP(p, "1,2,3;")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, v)
	assert.Equal(t, ";", rem)

	_, err, _ = runP(p, "abc")
	assert.Error(t, err)
}

func TestSeparatedListTrailingSeparatorNotConsumed(t *testing.T) {
	t.Parallel()

	p := SeparatedList1(Digit(), CharByte(','))

	v, err, rem := runP(p, "1,2,")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, v)
	assert.Equal(t, ",", rem, "a trailing separator with no following element is left unconsumed")
}

func BenchmarkSeparatedList1(b *testing.B) {
	p := SeparatedList1(Digit(), CharByte(','))
	for i := 0; i < b.N; i++ {
		p(NewCursor("input", []byte("1,2,3,4,5")))
	}
}
