package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rget/pkg/charset"
)

// Request holds the resolved parameters for one generator call.
type Request struct {
	MinLength int
	MaxLength int
	Count     int
	Case      charset.Case
	NoRepeat  bool

	// Charset overrides the mode's charset. Required for CustomCharset.
	Charset *charset.Charset
}

// Fixed returns a request for count strings of exactly length characters.
func Fixed(length, count int) Request {
	return Request{MinLength: length, MaxLength: length, Count: count}
}

func (r Request) validate() error {
	if r.MinLength < 0 || r.MaxLength < 0 || r.MinLength > r.MaxLength {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidLength, r.MinLength, r.MaxLength)
	}
	if r.Count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, r.Count)
	}
	return nil
}

// Generator produces strings for every mode from a single sampler.
type Generator struct {
	sampler *charset.Sampler
}

// New creates a generator. A nil src uses a randomly seeded source.
func New(src rand.Source) *Generator {
	return &Generator{sampler: charset.NewSampler(src)}
}

// Length draws a length uniformly from [lo, hi]. It returns lo when hi <= lo.
func (g *Generator) Length(lo, hi int) int {
	return g.sampler.IntBetween(lo, hi)
}

// Generate dispatches to the mode's generator.
func (g *Generator) Generate(mode Mode, req Request) ([]string, error) {
	switch mode {
	case UUID:
		return g.UUID(req.Count)
	case Numeric, Alpha, Alphanumeric, CustomCharset:
		if req.Charset != nil {
			return g.fromCharset(mode, *req.Charset, req)
		}
		cs, err := mode.Charset(req.Case, nil)
		if err != nil {
			return nil, err
		}
		return g.fromCharset(mode, cs, req)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}

// Numeric generates digit strings.
func (g *Generator) Numeric(req Request) ([]string, error) {
	return g.fromCharset(Numeric, charset.Numeric(), req)
}

// Alpha generates letter strings honouring req.Case.
func (g *Generator) Alpha(req Request) ([]string, error) {
	return g.fromCharset(Alpha, charset.Alpha(req.Case), req)
}

// Alphanumeric generates letter and digit strings honouring req.Case.
func (g *Generator) Alphanumeric(req Request) ([]string, error) {
	return g.fromCharset(Alphanumeric, charset.Alphanumeric(req.Case), req)
}

// Custom generates strings from cs, ignoring req.Charset and req.Case.
func (g *Generator) Custom(cs charset.Charset, req Request) ([]string, error) {
	return g.fromCharset(CustomCharset, cs, req)
}

// UUID returns count random version 4 UUIDs.
func (g *Generator) UUID(count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	out := make([]string, count)
	for i := range out {
		out[i] = uuid.NewString()
	}
	return out, nil
}

func (g *Generator) fromCharset(mode Mode, cs charset.Charset, req Request) ([]string, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	hi := req.MaxLength
	if req.NoRepeat {
		limit := cs.Unique()
		if req.MinLength > limit {
			return nil, fmt.Errorf("%w: mode %s, length %d, %d unique characters",
				charset.ErrLengthExceedsCardinality, mode, req.MinLength, limit)
		}
		hi = min(hi, limit)
	}

	out := make([]string, 0, req.Count)
	for range req.Count {
		length := g.sampler.IntBetween(req.MinLength, hi)
		s, err := g.sampler.Sample(cs, length, req.NoRepeat)
		if err != nil {
			return nil, fmt.Errorf("mode %s: %w", mode, err)
		}
		out = append(out, s)
	}
	return out, nil
}
