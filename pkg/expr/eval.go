package expr

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/rget/pkg/charset"
	"github.com/dmitrymomot/rget/pkg/generator"
)

// DefaultLength applies when an invocation names no length and no global
// length is set.
const DefaultLength = 8

const (
	paramRandom   = "r"
	paramNoRepeat = "nr"
	paramLower    = "s"
	paramUpper    = "S"
)

// Env carries what evaluation needs beyond the program itself.
type Env struct {
	Generator *generator.Generator

	// MinLength and MaxLength bound "r" lengths. One length is drawn per
	// invocation, so with "nr" a draw above the cardinality fails.
	MinLength int
	MaxLength int

	// Length, when positive, replaces "r" and default lengths.
	Length int

	// Input, when set, is the charset of every cc invocation.
	Input *charset.Charset
}

// Resolve turns an invocation into a generator request for one string.
func (s Segment) Resolve(env Env) (generator.Request, error) {
	req := generator.Request{Count: 1}

	var first string
	if len(s.Params) > 0 {
		first = s.Params[0]
	}

	switch {
	case isDigits(first):
		n, err := strconv.Atoi(first)
		if err != nil {
			return req, fmt.Errorf("%w: %s", generator.ErrInvalidLength, first)
		}
		req.MinLength, req.MaxLength = n, n
	case env.Length > 0:
		req.MinLength, req.MaxLength = env.Length, env.Length
	case first == paramRandom:
		// drawn here so no-repeat checks the drawn length instead of capping the range
		if env.Generator == nil {
			return req, ErrNoGenerator
		}
		if env.MinLength < 0 || env.MinLength > env.MaxLength {
			return req, fmt.Errorf("%w: min %d, max %d", generator.ErrInvalidLength, env.MinLength, env.MaxLength)
		}
		n := env.Generator.Length(env.MinLength, env.MaxLength)
		req.MinLength, req.MaxLength = n, n
	default:
		req.MinLength, req.MaxLength = DefaultLength, DefaultLength
	}

	req.NoRepeat = slices.Contains(s.Params, paramNoRepeat)
	for _, p := range s.Params {
		if p == paramLower {
			req.Case = charset.CaseLower
			break
		}
		if p == paramUpper {
			req.Case = charset.CaseUpper
			break
		}
	}

	if s.Mode == generator.CustomCharset {
		cs := env.Input
		if cs == nil {
			inline := charset.New(inlineCharset(s.Params))
			cs = &inline
		}
		req.Charset = cs
	}

	return req, nil
}

// inlineCharset joins the cc parameters after the length slot, skipping flags.
func inlineCharset(params []string) string {
	if len(params) < 2 {
		return ""
	}
	var b strings.Builder
	for _, p := range params[1:] {
		switch p {
		case paramNoRepeat, paramLower, paramUpper:
			continue
		}
		b.WriteString(p)
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Eval produces count strings, walking the program once per string.
// Any failure discards the whole batch.
func (p Program) Eval(ctx context.Context, env Env, count int) ([]string, error) {
	if env.Generator == nil {
		return nil, ErrNoGenerator
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", generator.ErrInvalidCount, count)
	}

	out := make([]string, 0, count)
	var b strings.Builder
	for range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b.Reset()
		for i, seg := range p {
			if seg.Kind == KindLiteral {
				b.WriteString(seg.Text)
				continue
			}
			if !seg.Mode.Valid() {
				return nil, fmt.Errorf("%w: %q at segment %d", generator.ErrUnknownMode, string(seg.Mode), i)
			}

			req, err := seg.Resolve(env)
			if err != nil {
				return nil, fmt.Errorf("segment %d (%s): %w", i, seg, err)
			}
			res, err := env.Generator.Generate(seg.Mode, req)
			if err != nil {
				return nil, fmt.Errorf("segment %d (%s): %w", i, seg, err)
			}
			b.WriteString(res[0])
		}
		out = append(out, b.String())
	}
	return out, nil
}
