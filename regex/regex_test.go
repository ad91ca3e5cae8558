package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oleiade/parsekit"
)

func runRegex(t *testing.T, pattern, input string) (string, error) {
	t.Helper()
	p, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return parsekit.ParseString("input", input, p)
}

func TestCompileLiteral(t *testing.T) {
	t.Parallel()

	v, err := runRegex(t, "abc", "abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestCompileDotExcludesNewline(t *testing.T) {
	t.Parallel()

	p, err := Compile(".")
	assert.NoError(t, err)

	_, err = parsekit.ParseString("input", "x", p)
	assert.NoError(t, err)

	_, err = parsekit.ParseString("input", "\n", p)
	assert.Error(t, err, "'.' must not match a newline")
}

func TestCompileEscape(t *testing.T) {
	t.Parallel()

	v, err := runRegex(t, `\.`, ".")
	assert.NoError(t, err)
	assert.Equal(t, ".", v)

	_, err = runRegex(t, `\.`, "x")
	assert.Error(t, err)
}

func TestCompileClass(t *testing.T) {
	t.Parallel()

	p, err := Compile("[a-c]")
	assert.NoError(t, err)

	for _, in := range []string{"a", "b", "c"} {
		_, err := parsekit.ParseString("input", in, p)
		assert.NoError(t, err)
	}
	_, err = parsekit.ParseString("input", "d", p)
	assert.Error(t, err)
}

func TestCompileNegatedClass(t *testing.T) {
	t.Parallel()

	p, err := Compile("[^0-9]")
	assert.NoError(t, err)

	_, err = parsekit.ParseString("input", "x", p)
	assert.NoError(t, err)

	_, err = parsekit.ParseString("input", "5", p)
	assert.Error(t, err)
}

func TestCompileAnchors(t *testing.T) {
	t.Parallel()

	p, err := Compile("^abc$")
	assert.NoError(t, err)

	_, err = parsekit.ParseString("input", "abc", p)
	assert.NoError(t, err)

	_, err = parsekit.ParseString("input", "xabc", p)
	assert.Error(t, err)

	_, err = parsekit.ParseString("input", "abcx", p)
	assert.Error(t, err)
}

func TestCompileEscapedDollarIsNotAnAnchor(t *testing.T) {
	t.Parallel()

	p, err := Compile(`a\$`)
	assert.NoError(t, err)

	got, err := parsekit.ParseString("input", "a$", p)
	assert.NoError(t, err)
	assert.Equal(t, "a$", got)

	_, err = parsekit.ParseString("input", "a$b", p)
	assert.NoError(t, err)
}

func TestCompilePostfixStar(t *testing.T) {
	t.Parallel()

	p, err := Compile("ab*c")
	assert.NoError(t, err)

	for _, in := range []string{"ac", "abc", "abbbc"} {
		_, err := parsekit.ParseString("input", in, p)
		assert.NoError(t, err, in)
	}
}

func TestCompilePostfixPlus(t *testing.T) {
	t.Parallel()

	p, err := Compile("ab+c")
	assert.NoError(t, err)

	_, err = parsekit.ParseString("input", "ac", p)
	assert.Error(t, err)

	_, err = parsekit.ParseString("input", "abc", p)
	assert.NoError(t, err)
}

func TestCompilePostfixOptional(t *testing.T) {
	t.Parallel()

	p, err := Compile("ab?c")
	assert.NoError(t, err)

	for _, in := range []string{"ac", "abc"} {
		_, err := parsekit.ParseString("input", in, p)
		assert.NoError(t, err, in)
	}
}

func TestCompileAlternation(t *testing.T) {
	t.Parallel()

	p, err := Compile("cat|dog")
	assert.NoError(t, err)

	for _, in := range []string{"cat", "dog"} {
		v, err := parsekit.ParseString("input", in, p)
		assert.NoError(t, err)
		assert.Equal(t, in, v)
	}

	_, err = parsekit.ParseString("input", "bird", p)
	assert.Error(t, err)
}

func TestCompileGrouping(t *testing.T) {
	t.Parallel()

	p, err := Compile("(ab)+")
	assert.NoError(t, err)

	v, err := parsekit.ParseString("input", "ababab", p)
	assert.NoError(t, err)
	assert.Equal(t, "ababab", v)
}

func TestCompileDecimalPattern(t *testing.T) {
	t.Parallel()

	p, err := Compile(`[0-9]+\.[0-9]+`)
	assert.NoError(t, err)

	v, err := parsekit.ParseString("input", "3.14", p)
	assert.NoError(t, err)
	assert.Equal(t, "3.14", v)

	_, err = parsekit.ParseString("input", "3.", p)
	assert.Error(t, err)
}

func TestCompileMalformedPatternReportsPosition(t *testing.T) {
	t.Parallel()

	_, err := Compile("[a-")
	assert.Error(t, err)

	var perr *parsekit.Error
	if assert.ErrorAs(t, err, &perr) {
		assert.Equal(t, 1, perr.Line)
	}
}

func TestMustCompilePanicsOnBadPattern(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustCompile to panic on a malformed pattern")
		}
	}()
	MustCompile("[a-")
}
