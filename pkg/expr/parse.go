package expr

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrymomot/rget/pkg/generator"
)

// scanner is private to a single Parse call.
type scanner struct {
	src []rune
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() rune {
	return s.src[s.pos]
}

// indexFrom returns the position of the first r at or after from, or -1.
func (s *scanner) indexFrom(from int, r rune) int {
	for i := from; i < len(s.src); i++ {
		if s.src[i] == r {
			return i
		}
	}
	return -1
}

// Parse compiles text into a Program.
func Parse(text string) (Program, error) {
	s := &scanner{src: []rune(text)}
	prog := Program{}

	for !s.done() {
		c := s.peek()
		switch {
		case unicode.IsLetter(c):
			seg, err := s.invocation()
			if err != nil {
				return nil, err
			}
			prog = append(prog, seg)

		case c == '\'' || c == '"':
			end := s.indexFrom(s.pos+1, c)
			if end < 0 {
				return nil, fmt.Errorf("%w: literal opened at offset %d", ErrUnterminatedLiteral, s.pos)
			}
			prog = append(prog, Literal(string(s.src[s.pos+1:end])))
			s.pos = end + 1

		case unicode.IsSpace(c) || c == ',' || c == '[' || c == ']':
			s.pos++

		default:
			prog = append(prog, Literal(string(c)))
			s.pos++
		}
	}

	return prog, nil
}

func (s *scanner) invocation() (Segment, error) {
	start := s.pos
	s.pos++
	for !s.done() && (unicode.IsLetter(s.peek()) || unicode.IsDigit(s.peek())) {
		s.pos++
	}
	mode := generator.Mode(s.src[start:s.pos])

	if s.done() || s.peek() != '(' {
		return Invocation(mode), nil
	}

	end := s.indexFrom(s.pos+1, ')')
	if end < 0 {
		return Segment{}, fmt.Errorf("%w: %s( opened at offset %d", ErrUnterminatedGroup, mode, s.pos)
	}
	params := strings.Split(string(s.src[s.pos+1:end]), ";")
	s.pos = end + 1

	return Invocation(mode, params...), nil
}
