package parsekit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpect(t *testing.T) {
	t.Parallel()

	_, err, _ := runP(Expect(Digit(), "a digit"), "x")
	assert.Error(t, err)
	assert.Equal(t, []string{"a digit"}, err.ExpectedList())

	v, err, _ := runP(Expect(Digit(), "a digit"), "5")
	assert.NoError(t, err)
	assert.Equal(t, "5", v)
}

func TestMap(t *testing.T) {
	t.Parallel()

	toUpper := Map(Digit(), func(s string) (string, error) {
		if s == "0" {
			return "", errors.New("zero not allowed")
		}
		return "digit:" + s, nil
	})

	v, err, _ := runP(toUpper, "5")
	assert.NoError(t, err)
	assert.Equal(t, "digit:5", v)

	_, err, _ = runP(toUpper, "0")
	assert.Error(t, err)
	assert.True(t, err.IsFatal())
}

func TestMapCtx(t *testing.T) {
	t.Parallel()

	p := MapCtx(Digit(), "prefix:", func(s, ctx string) (string, error) {
		return ctx + s, nil
	})

	v, _, _ := runP(p, "9")
	assert.Equal(t, "prefix:9", v)
}

func TestAssign(t *testing.T) {
	t.Parallel()

	p := Assign(true, Literal("yes"))
	v, err, rem := runP(p, "yes!")
	assert.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, "!", rem)
}

func TestNot(t *testing.T) {
	t.Parallel()

	p := Not(CharByte(')'), "not a close paren")

	_, err, rem := runP(p, "abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", rem) // no input consumed

	_, err, _ = runP(p, ")")
	assert.Error(t, err)
}

func TestMaybe(t *testing.T) {
	t.Parallel()

	p := Maybe(Digit())

	v, err, rem := runP(p, "5x")
	assert.NoError(t, err)
	assert.Equal(t, "5", v)
	assert.Equal(t, "x", rem)

	v, err, rem = runP(p, "x")
	assert.NoError(t, err)
	assert.Equal(t, "", v)
	assert.Equal(t, "x", rem)
}

func TestMaybeElse(t *testing.T) {
	t.Parallel()

	p := MaybeElse(Digit(), func() string { return "none" })

	v, _, _ := runP(p, "y")
	assert.Equal(t, "none", v)
}

func concatFold(acc string, s string) string { return acc + s }

func TestMany(t *testing.T) {
	t.Parallel()

	p := Many(Digit(), concatFold)

	v, err, rem := runP(p, "123abc")
	assert.NoError(t, err)
	assert.Equal(t, "123", v)
	assert.Equal(t, "abc", rem)

	v, err, rem = runP(p, "abc")
	assert.NoError(t, err)
	assert.Equal(t, "", v)
	assert.Equal(t, "abc", rem)
}

func TestManyFailsOnEmptyMatchLoop(t *testing.T) {
	t.Parallel()

	alwaysSucceedsEmpty := Maybe(CharByte('z'))
	p := Many(alwaysSucceedsEmpty, concatFold)

	_, err, _ := runP(p, "abc")
	assert.Error(t, err, "many over a parser that can succeed without consuming must fail, not loop forever")
}

func TestMany1(t *testing.T) {
	t.Parallel()

	p := Many1(Digit(), concatFold)

	v, err, rem := runP(p, "123abc")
	assert.NoError(t, err)
	assert.Equal(t, "123", v)
	assert.Equal(t, "abc", rem)

	_, err, _ = runP(p, "abc")
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	t.Parallel()

	p := Count(Digit(), 3, concatFold)

	v, err, rem := runP(p, "1234")
	assert.NoError(t, err)
	assert.Equal(t, "123", v)
	assert.Equal(t, "4", rem)

	_, err, _ = runP(p, "12")
	assert.Error(t, err)
}

func TestSkipMany(t *testing.T) {
	t.Parallel()

	p := SkipMany(Space())

	_, err, rem := runP(p, "   abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", rem)

	_, err, rem = runP(p, "abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", rem)
}

func TestSkipMany1(t *testing.T) {
	t.Parallel()

	p := SkipMany1(Space())

	_, err, rem := runP(p, "   abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", rem)

	_, err, _ = runP(p, "abc")
	assert.Error(t, err)
}

func BenchmarkMany1(b *testing.B) {
	p := Many1(Digit(), concatFold)
	for i := 0; i < b.N; i++ {
		p(NewCursor("input", []byte("123456789")))
	}
}
