package generator_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rget/pkg/charset"
	"github.com/dmitrymomot/rget/pkg/generator"
)

func newGenerator() *generator.Generator {
	return generator.New(rand.NewPCG(7, 11))
}

func onlyFrom(t *testing.T, set, s string) {
	t.Helper()
	for _, r := range s {
		assert.True(t, strings.ContainsRune(set, r), "%q not in %q", r, set)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, m := range generator.Modes {
		got, ok := generator.ParseMode(string(m))
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}

	for _, s := range []string{"N", "AN", "x", "", "uu", "w"} {
		_, ok := generator.ParseMode(s)
		assert.False(t, ok, s)
	}
}

func TestModeCardinality(t *testing.T) {
	t.Parallel()

	custom := charset.New("abca")
	tests := []struct {
		mode generator.Mode
		cs   charset.Case
		want int
	}{
		{generator.Numeric, charset.CaseAny, 10},
		{generator.Alpha, charset.CaseAny, 52},
		{generator.Alpha, charset.CaseLower, 26},
		{generator.Alpha, charset.CaseUpper, 26},
		{generator.Alphanumeric, charset.CaseAny, 62},
		{generator.Alphanumeric, charset.CaseLower, 36},
		{generator.Alphanumeric, charset.CaseUpper, 36},
		{generator.CustomCharset, charset.CaseAny, 3},
	}

	for _, tt := range tests {
		got, err := tt.mode.Cardinality(tt.cs, &custom)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s/%s", tt.mode, tt.cs)
	}

	_, err := generator.CustomCharset.Cardinality(charset.CaseAny, nil)
	require.ErrorIs(t, err, generator.ErrMissingCharset)

	_, err = generator.Mode("zz").Cardinality(charset.CaseAny, nil)
	require.ErrorIs(t, err, generator.ErrUnknownMode)
}

func TestGenerate_Modes(t *testing.T) {
	t.Parallel()

	g := newGenerator()
	custom := charset.New("xyz")

	tests := []struct {
		name string
		mode generator.Mode
		req  generator.Request
		set  string
	}{
		{name: "numeric", mode: generator.Numeric, req: generator.Fixed(12, 5), set: charset.Digits},
		{name: "alpha lower", mode: generator.Alpha, req: generator.Request{MinLength: 8, MaxLength: 8, Count: 5, Case: charset.CaseLower}, set: charset.LowerLetters},
		{name: "alpha upper", mode: generator.Alpha, req: generator.Request{MinLength: 8, MaxLength: 8, Count: 5, Case: charset.CaseUpper}, set: charset.UpperLetters},
		{name: "alphanumeric", mode: generator.Alphanumeric, req: generator.Fixed(20, 5), set: charset.Letters + charset.Digits},
		{name: "custom", mode: generator.CustomCharset, req: generator.Request{MinLength: 9, MaxLength: 9, Count: 5, Charset: &custom}, set: "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := g.Generate(tt.mode, tt.req)
			require.NoError(t, err)
			require.Len(t, out, tt.req.Count)
			for _, s := range out {
				assert.Len(t, s, tt.req.MinLength)
				onlyFrom(t, tt.set, s)
			}
		})
	}
}

func TestGenerate_RandomLengthWithinBounds(t *testing.T) {
	t.Parallel()

	out, err := newGenerator().Alpha(generator.Request{MinLength: 2, MaxLength: 9, Count: 200})
	require.NoError(t, err)

	lengths := make(map[int]bool)
	for _, s := range out {
		assert.GreaterOrEqual(t, len(s), 2)
		assert.LessOrEqual(t, len(s), 9)
		lengths[len(s)] = true
	}
	assert.Greater(t, len(lengths), 1, "lengths are drawn per output")
}

func TestLength(t *testing.T) {
	t.Parallel()

	g := newGenerator()
	for range 100 {
		n := g.Length(3, 7)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 7)
	}
	assert.Equal(t, 5, g.Length(5, 2))
}

func TestGenerate_NoRepeatCapsUpperBound(t *testing.T) {
	t.Parallel()

	out, err := newGenerator().Numeric(generator.Request{MinLength: 4, MaxLength: 500, Count: 50, NoRepeat: true})
	require.NoError(t, err)
	for _, s := range out {
		assert.GreaterOrEqual(t, len(s), 4)
		assert.LessOrEqual(t, len(s), 10)
	}
}

func TestGenerate_NoRepeatTooLong(t *testing.T) {
	t.Parallel()

	_, err := newGenerator().Numeric(generator.Request{MinLength: 12, MaxLength: 12, Count: 1, NoRepeat: true})
	require.ErrorIs(t, err, charset.ErrLengthExceedsCardinality)
	assert.Contains(t, err.Error(), "mode n")
	assert.Contains(t, err.Error(), "length 12")
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	g := newGenerator()
	empty := charset.New("")

	_, err := g.Generate(generator.Numeric, generator.Request{MinLength: 5, MaxLength: 2, Count: 1})
	require.ErrorIs(t, err, generator.ErrInvalidLength)

	_, err = g.Generate(generator.Numeric, generator.Request{MinLength: -1, MaxLength: 2, Count: 1})
	require.ErrorIs(t, err, generator.ErrInvalidLength)

	_, err = g.Generate(generator.Alpha, generator.Request{MinLength: 1, MaxLength: 1, Count: -1})
	require.ErrorIs(t, err, generator.ErrInvalidCount)

	_, err = g.Generate(generator.CustomCharset, generator.Fixed(3, 1))
	require.ErrorIs(t, err, generator.ErrMissingCharset)

	_, err = g.Generate(generator.CustomCharset, generator.Request{MinLength: 3, MaxLength: 3, Count: 1, Charset: &empty})
	require.ErrorIs(t, err, charset.ErrEmptyCharset)

	_, err = g.Generate(generator.Mode("x"), generator.Fixed(3, 1))
	require.ErrorIs(t, err, generator.ErrUnknownMode)
}

func TestGenerate_ZeroCount(t *testing.T) {
	t.Parallel()

	out, err := newGenerator().Numeric(generator.Fixed(4, 0))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUUID(t *testing.T) {
	t.Parallel()

	out, err := newGenerator().Generate(generator.UUID, generator.Request{Count: 4, MinLength: 99, MaxLength: 99, NoRepeat: true})
	require.NoError(t, err)
	require.Len(t, out, 4)

	seen := make(map[string]bool)
	for _, s := range out {
		id, err := uuid.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
		assert.False(t, seen[s])
		seen[s] = true
	}
}
