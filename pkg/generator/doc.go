// Package generator implements the rget generation modes on top of the
// charset sampler.
//
// Five modes are supported, identified by their short tags:
//
//	n   numeric        digits 0-9
//	a   alpha          letters, optionally restricted to one case
//	an  alphanumeric   letters and digits, optionally restricted to one case
//	cc  custom         caller-supplied charset
//	u   uuid           version 4 UUIDs
//
// Each mode is a thin policy that picks a charset and hands it to the
// sampler. For every requested string the length is drawn uniformly from
// [MinLength, MaxLength], so a batch may mix lengths unless the bounds are
// equal.
//
// # Usage
//
//	g := generator.New(nil)
//
//	codes, err := g.Generate(generator.Numeric, generator.Request{
//	    MinLength: 6,
//	    MaxLength: 6,
//	    Count:     3,
//	    NoRepeat:  true,
//	})
//
// A Generator is not safe for concurrent use. Workers filling a batch in
// parallel should each own a Generator built from an independent source.
package generator
