package charset

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Sampler draws random strings from charsets.
type Sampler struct {
	rnd *rand.Rand
}

// NewSampler creates a sampler backed by src.
// A nil src gets a PCG source seeded from the runtime's global generator.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{rnd: rand.New(src)}
}

// IntBetween returns a uniform integer in [lo, hi]. It returns lo when hi <= lo.
func (s *Sampler) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rnd.IntN(hi-lo+1)
}

// Sample returns a random string of length characters taken from cs.
// With noRepeat no character appears twice and length is bounded by cs.Unique().
func (s *Sampler) Sample(cs Charset, length int, noRepeat bool) (string, error) {
	switch {
	case length < 0:
		return "", fmt.Errorf("%w: %d", ErrNegativeLength, length)
	case length == 0:
		return "", nil
	case cs.Empty():
		return "", ErrEmptyCharset
	}

	if noRepeat {
		return s.sampleDistinct(cs, length)
	}

	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteRune(cs.chars[s.rnd.IntN(len(cs.chars))])
	}
	return b.String(), nil
}

// sampleDistinct runs a partial Fisher-Yates shuffle over the unique characters.
func (s *Sampler) sampleDistinct(cs Charset, length int) (string, error) {
	if length > cs.unique {
		return "", fmt.Errorf("%w: requested %d, charset has %d", ErrLengthExceedsCardinality, length, cs.unique)
	}

	pool := cs.distinct()
	for i := range length {
		j := i + s.rnd.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return string(pool[:length]), nil
}
