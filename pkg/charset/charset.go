package charset

// Character sets backing the built-in modes.
const (
	// Digits is the numeric charset.
	Digits = "0123456789"
	// LowerLetters is the ASCII lowercase alphabet.
	LowerLetters = "abcdefghijklmnopqrstuvwxyz"
	// UpperLetters is the ASCII uppercase alphabet.
	UpperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Letters is both alphabets, lowercase first.
	Letters = LowerLetters + UpperLetters
)

// Case restricts letter charsets to a single case.
type Case int

const (
	// CaseAny keeps both cases.
	CaseAny Case = iota
	// CaseLower keeps lowercase letters only.
	CaseLower
	// CaseUpper keeps uppercase letters only.
	CaseUpper
)

// String returns the flag-style name of the case policy.
func (c Case) String() string {
	switch c {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	default:
		return "any"
	}
}

// Charset is an immutable ordered sequence of characters.
type Charset struct {
	chars  []rune
	unique int
}

// New builds a charset from s, keeping duplicates and order.
func New(s string) Charset {
	chars := []rune(s)
	seen := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		seen[r] = struct{}{}
	}
	return Charset{chars: chars, unique: len(seen)}
}

// Numeric returns the digits 0-9.
func Numeric() Charset {
	return New(Digits)
}

// Alpha returns the letters allowed by the case policy.
func Alpha(c Case) Charset {
	switch c {
	case CaseLower:
		return New(LowerLetters)
	case CaseUpper:
		return New(UpperLetters)
	default:
		return New(Letters)
	}
}

// Alphanumeric returns Alpha(c) followed by the digits.
func Alphanumeric(c Case) Charset {
	return New(Alpha(c).String() + Digits)
}

// Len is the number of characters including duplicates.
func (c Charset) Len() int {
	return len(c.chars)
}

// Unique is the number of distinct characters.
func (c Charset) Unique() int {
	return c.unique
}

// Empty reports whether the charset has no characters.
func (c Charset) Empty() bool {
	return len(c.chars) == 0
}

func (c Charset) String() string {
	return string(c.chars)
}

// distinct returns the unique characters in first-seen order.
func (c Charset) distinct() []rune {
	if c.unique == len(c.chars) {
		out := make([]rune, len(c.chars))
		copy(out, c.chars)
		return out
	}
	seen := make(map[rune]struct{}, c.unique)
	out := make([]rune, 0, c.unique)
	for _, r := range c.chars {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
