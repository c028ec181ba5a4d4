package expr

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/rget/pkg/generator"
)

// Kind tells literal and invocation segments apart.
type Kind int

const (
	KindLiteral Kind = iota
	KindInvocation
)

// Segment is one element of a parsed expression.
type Segment struct {
	Kind Kind

	// Text is set for literals.
	Text string

	// Mode and Params are set for invocations. Mode may be an unknown tag.
	Mode   generator.Mode
	Params []string
}

// Literal returns a literal segment.
func Literal(text string) Segment {
	return Segment{Kind: KindLiteral, Text: text}
}

// Invocation returns a mode invocation segment.
func Invocation(mode generator.Mode, params ...string) Segment {
	return Segment{Kind: KindInvocation, Mode: mode, Params: params}
}

// String renders the segment back in expression syntax.
func (s Segment) String() string {
	if s.Kind == KindLiteral {
		q := "'"
		if strings.Contains(s.Text, q) {
			q = `"`
		}
		return q + s.Text + q
	}
	if s.Params == nil {
		return string(s.Mode)
	}
	return string(s.Mode) + "(" + strings.Join(s.Params, ";") + ")"
}

// Program is a parsed expression.
type Program []Segment

// String renders the program as a bracketed expression.
func (p Program) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Validate reports the first invocation whose mode is not a known tag.
// Eval performs the same check lazily.
func (p Program) Validate() error {
	for i, s := range p {
		if s.Kind == KindInvocation && !s.Mode.Valid() {
			return fmt.Errorf("%w: %q at segment %d", generator.ErrUnknownMode, string(s.Mode), i)
		}
	}
	return nil
}
