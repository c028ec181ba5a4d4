package expr_test

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rget/pkg/charset"
	"github.com/dmitrymomot/rget/pkg/expr"
	"github.com/dmitrymomot/rget/pkg/generator"
)

func testEnv() expr.Env {
	return expr.Env{
		Generator: generator.New(rand.NewPCG(3, 5)),
		MinLength: 1,
		MaxLength: 20,
	}
}

func mustParse(t *testing.T, s string) expr.Program {
	t.Helper()
	prog, err := expr.Parse(s)
	require.NoError(t, err)
	return prog
}

func uniqueRunes(s string) bool {
	seen := make(map[rune]bool)
	for _, r := range s {
		if seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}

func TestEval_PrefixDigitsSuffix(t *testing.T) {
	t.Parallel()

	out, err := mustParse(t, "['1',n(10;nr),'K']").Eval(context.Background(), testEnv(), 20)
	require.NoError(t, err)
	require.Len(t, out, 20)

	re := regexp.MustCompile(`^1[0-9]{10}K$`)
	for _, s := range out {
		require.Regexp(t, re, s)
		assert.True(t, uniqueRunes(s[1:11]), s)
	}
}

func TestEval_Email(t *testing.T) {
	t.Parallel()

	out, err := mustParse(t, "[an(10;nr),'@test.com',n(5;r)]").Eval(context.Background(), testEnv(), 10)
	require.NoError(t, err)

	re := regexp.MustCompile(`^[A-Za-z0-9]{10}@test\.com[0-9]{5}$`)
	for _, s := range out {
		assert.Regexp(t, re, s)
		assert.True(t, uniqueRunes(s[:10]), s)
	}
}

func TestEval_RandomLength(t *testing.T) {
	t.Parallel()

	env := testEnv()
	env.MinLength, env.MaxLength = 3, 6

	out, err := mustParse(t, "[n(r)]").Eval(context.Background(), env, 100)
	require.NoError(t, err)
	for _, s := range out {
		assert.GreaterOrEqual(t, len(s), 3)
		assert.LessOrEqual(t, len(s), 6)
	}
}

func TestEval_GlobalLength(t *testing.T) {
	t.Parallel()

	env := testEnv()
	env.Length = 4

	out, err := mustParse(t, "[n(r),'-',a,'-',an(2)]").Eval(context.Background(), env, 5)
	require.NoError(t, err)

	re := regexp.MustCompile(`^[0-9]{4}-[A-Za-z]{4}-[A-Za-z0-9]{2}$`)
	for _, s := range out {
		assert.Regexp(t, re, s)
	}
}

func TestEval_DefaultLength(t *testing.T) {
	t.Parallel()

	out, err := mustParse(t, "[a(nr;s),n(x)]").Eval(context.Background(), testEnv(), 5)
	require.NoError(t, err)

	re := regexp.MustCompile(`^[a-z]{8}[0-9]{8}$`)
	for _, s := range out {
		assert.Regexp(t, re, s)
		assert.True(t, uniqueRunes(s[:8]), s)
	}
}

func TestEval_Case(t *testing.T) {
	t.Parallel()

	out, err := mustParse(t, "[a(12;S;s),'|',an(12;s)]").Eval(context.Background(), testEnv(), 5)
	require.NoError(t, err)

	re := regexp.MustCompile(`^[A-Z]{12}\|[a-z0-9]{12}$`)
	for _, s := range out {
		assert.Regexp(t, re, s)
	}
}

func TestEval_UUID(t *testing.T) {
	t.Parallel()

	out, err := mustParse(t, "['id-',u]").Eval(context.Background(), testEnv(), 3)
	require.NoError(t, err)

	re := regexp.MustCompile(`^id-[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	for _, s := range out {
		assert.Regexp(t, re, s)
	}
}

func TestEval_CustomCharset(t *testing.T) {
	t.Parallel()

	out, err := mustParse(t, "[cc(6;ab;c)]").Eval(context.Background(), testEnv(), 5)
	require.NoError(t, err)
	for _, s := range out {
		assert.Len(t, s, 6)
		assert.Empty(t, strings.Trim(s, "abc"), s)
	}

	_, err = mustParse(t, "[cc(4;ab;nr;c)]").Eval(context.Background(), testEnv(), 1)
	require.ErrorIs(t, err, charset.ErrLengthExceedsCardinality)
}

func TestEval_InputOverridesInlineCharset(t *testing.T) {
	t.Parallel()

	env := testEnv()
	input := charset.New("XY")
	env.Input = &input

	out, err := mustParse(t, "[cc(5;abc)]").Eval(context.Background(), env, 5)
	require.NoError(t, err)
	for _, s := range out {
		assert.Empty(t, strings.Trim(s, "XY"), s)
	}

	_, err = mustParse(t, "[cc(3;abc;nr)]").Eval(context.Background(), env, 1)
	require.ErrorIs(t, err, charset.ErrLengthExceedsCardinality)
}

func TestEval_EmptyInlineCharset(t *testing.T) {
	t.Parallel()

	_, err := mustParse(t, "[cc(3)]").Eval(context.Background(), testEnv(), 1)
	require.ErrorIs(t, err, charset.ErrEmptyCharset)

	out, err := mustParse(t, "['x',cc(0)]").Eval(context.Background(), testEnv(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, out)
}

func TestEval_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
		want error
	}{
		{name: "unknown mode", expr: "[W,n(10)]", want: generator.ErrUnknownMode},
		{name: "no repeat numeric", expr: "['a',n(11;nr)]", want: charset.ErrLengthExceedsCardinality},
		{name: "no repeat lower alpha", expr: "[a(27;nr;s)]", want: charset.ErrLengthExceedsCardinality},
		{name: "length overflow", expr: "[n(99999999999999999999999)]", want: generator.ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := mustParse(t, tt.expr).Eval(context.Background(), testEnv(), 3)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, out)
		})
	}
}

func TestEval_NoGenerator(t *testing.T) {
	t.Parallel()

	_, err := mustParse(t, "n").Eval(context.Background(), expr.Env{}, 1)
	require.ErrorIs(t, err, expr.ErrNoGenerator)
}

func TestEval_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mustParse(t, "n").Eval(ctx, testEnv(), 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEval_ReusesProgram(t *testing.T) {
	t.Parallel()

	prog := mustParse(t, "[n(3),'/',n(3)]")
	env := testEnv()
	for range 3 {
		out, err := prog.Eval(context.Background(), env, 2)
		require.NoError(t, err)
		require.Len(t, out, 2)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	env := testEnv()
	env.MinLength, env.MaxLength = 2, 9

	tests := []struct {
		name string
		seg  expr.Segment
		min  int
		max  int
		nr   bool
		cs   charset.Case
	}{
		{name: "fixed", seg: expr.Invocation(generator.Numeric, "10"), min: 10, max: 10},
		{name: "default", seg: expr.Invocation(generator.Alpha), min: 8, max: 8},
		{name: "flag in length slot", seg: expr.Invocation(generator.Alpha, "nr", "S"), min: 8, max: 8, nr: true, cs: charset.CaseUpper},
		{name: "first case wins", seg: expr.Invocation(generator.Alpha, "3", "s", "S"), min: 3, max: 3, cs: charset.CaseLower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.seg.Resolve(env)
			require.NoError(t, err)
			assert.Equal(t, 1, req.Count)
			assert.Equal(t, tt.min, req.MinLength)
			assert.Equal(t, tt.max, req.MaxLength)
			assert.Equal(t, tt.nr, req.NoRepeat)
			assert.Equal(t, tt.cs, req.Case)
			assert.Nil(t, req.Charset)
		})
	}
}

func TestResolve_RandomLengthDrawnOnce(t *testing.T) {
	t.Parallel()

	env := testEnv()
	env.MinLength, env.MaxLength = 2, 9

	for range 50 {
		req, err := expr.Invocation(generator.Numeric, "r").Resolve(env)
		require.NoError(t, err)
		assert.Equal(t, req.MinLength, req.MaxLength)
		assert.GreaterOrEqual(t, req.MinLength, 2)
		assert.LessOrEqual(t, req.MaxLength, 9)
	}

	env.MinLength, env.MaxLength = 9, 2
	_, err := expr.Invocation(generator.Numeric, "r").Resolve(env)
	require.ErrorIs(t, err, generator.ErrInvalidLength)

	env = testEnv()
	env.Generator = nil
	_, err = expr.Invocation(generator.Numeric, "r").Resolve(env)
	require.ErrorIs(t, err, expr.ErrNoGenerator)
}

func TestEval_RandomNoRepeatAboveCardinality(t *testing.T) {
	t.Parallel()

	env := testEnv()
	env.MinLength, env.MaxLength = 11, 20

	out, err := mustParse(t, "[n(r;nr)]").Eval(context.Background(), env, 5)
	require.ErrorIs(t, err, charset.ErrLengthExceedsCardinality)
	assert.Nil(t, out)
}

func TestEval_RandomNoRepeatWithinCardinality(t *testing.T) {
	t.Parallel()

	env := testEnv()
	env.MinLength, env.MaxLength = 4, 10

	out, err := mustParse(t, "[n(r;nr)]").Eval(context.Background(), env, 50)
	require.NoError(t, err)
	for _, s := range out {
		assert.GreaterOrEqual(t, len(s), 4)
		assert.LessOrEqual(t, len(s), 10)
		assert.True(t, uniqueRunes(s), s)
	}
}

func TestResolve_CustomCharsetSkipsFlags(t *testing.T) {
	t.Parallel()

	req, err := expr.Invocation(generator.CustomCharset, "4", "ab", "nr", "S", "cd").Resolve(testEnv())
	require.NoError(t, err)
	require.NotNil(t, req.Charset)
	assert.Equal(t, "abcd", req.Charset.String())
	assert.True(t, req.NoRepeat)
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		if _, err := expr.Parse("[an(10;nr),'@test.com',n(5;r)]"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	prog, err := expr.Parse("[an(10;nr),'@test.com',n(5;r)]")
	if err != nil {
		b.Fatal(err)
	}
	env := testEnv()

	for b.Loop() {
		if _, err := prog.Eval(context.Background(), env, 1); err != nil {
			b.Fatal(err)
		}
	}
}
