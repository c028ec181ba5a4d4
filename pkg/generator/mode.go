package generator

import (
	"fmt"

	"github.com/dmitrymomot/rget/pkg/charset"
)

// Mode is a generation mode tag.
type Mode string

const (
	Numeric       Mode = "n"
	Alpha         Mode = "a"
	Alphanumeric  Mode = "an"
	CustomCharset Mode = "cc"
	UUID          Mode = "u"
)

// Modes lists every supported mode in tag order.
var Modes = []Mode{Numeric, Alpha, Alphanumeric, CustomCharset, UUID}

// ParseMode matches s exactly (case-sensitive) against the mode tags.
func ParseMode(s string) (Mode, bool) {
	m := Mode(s)
	return m, m.Valid()
}

// Valid reports whether m is one of the supported tags.
func (m Mode) Valid() bool {
	switch m {
	case Numeric, Alpha, Alphanumeric, CustomCharset, UUID:
		return true
	}
	return false
}

func (m Mode) String() string {
	return string(m)
}

// Charset returns the charset the mode samples from.
// custom is only consulted for CustomCharset; UUID has no charset.
func (m Mode) Charset(c charset.Case, custom *charset.Charset) (charset.Charset, error) {
	switch m {
	case Numeric:
		return charset.Numeric(), nil
	case Alpha:
		return charset.Alpha(c), nil
	case Alphanumeric:
		return charset.Alphanumeric(c), nil
	case CustomCharset:
		if custom == nil {
			return charset.Charset{}, ErrMissingCharset
		}
		return *custom, nil
	case UUID:
		return charset.Charset{}, nil
	default:
		return charset.Charset{}, fmt.Errorf("%w: %q", ErrUnknownMode, string(m))
	}
}

// Cardinality is the longest string the mode can produce without repetition.
func (m Mode) Cardinality(c charset.Case, custom *charset.Charset) (int, error) {
	cs, err := m.Charset(c, custom)
	if err != nil {
		return 0, err
	}
	return cs.Unique(), nil
}
