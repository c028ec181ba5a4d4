package charset

import "errors"

var (
	// ErrEmptyCharset is returned when a non-empty string is requested from an empty charset.
	ErrEmptyCharset = errors.New("charset is empty")

	// ErrLengthExceedsCardinality is returned when a no-repeat string is longer
	// than the number of unique characters available.
	ErrLengthExceedsCardinality = errors.New("length exceeds number of unique characters")

	// ErrNegativeLength is returned for lengths below zero.
	ErrNegativeLength = errors.New("length must not be negative")
)
