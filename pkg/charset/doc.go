// Package charset holds the character sets used by rget generators and the
// sampler that draws random strings from them.
//
// A Charset is an immutable, ordered sequence of runes. Duplicates are kept
// as supplied, but Unique reports the cardinality under set semantics, which
// is the upper bound for strings generated without repetition.
//
// # Usage
//
//	import "github.com/dmitrymomot/rget/pkg/charset"
//
//	s := charset.NewSampler(nil)
//
//	pin, err := s.Sample(charset.Numeric(), 6, true) // e.g. "803521"
//	if err != nil {
//	    // errors.Is(err, charset.ErrLengthExceedsCardinality)
//	}
//
//	custom := charset.New("abc!@#")
//	token, _ := s.Sample(custom, 16, false)
//
// # Sampling
//
// With repetition every position is an independent uniform draw. Without
// repetition the sampler draws distinct characters via a partial
// Fisher-Yates shuffle of the charset's unique characters, so the result
// never contains the same character twice.
//
// The sampler uses math/rand/v2 and is not suitable for secrets. A Sampler
// is not safe for concurrent use; give each goroutine its own.
package charset
