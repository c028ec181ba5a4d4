package generator

import "errors"

var (
	// ErrUnknownMode is returned for mode tags other than n, a, an, cc and u.
	ErrUnknownMode = errors.New("unknown generation mode")

	// ErrInvalidLength is returned for negative bounds or MinLength > MaxLength.
	ErrInvalidLength = errors.New("invalid length bounds")

	// ErrInvalidCount is returned for negative counts.
	ErrInvalidCount = errors.New("invalid count")

	// ErrMissingCharset is returned when custom mode is used without a charset.
	ErrMissingCharset = errors.New("custom charset mode requires a charset")
)
