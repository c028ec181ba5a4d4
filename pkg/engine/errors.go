package engine

import (
	"errors"

	"github.com/dmitrymomot/rget/pkg/charset"
	"github.com/dmitrymomot/rget/pkg/expr"
	"github.com/dmitrymomot/rget/pkg/generator"
)

var (
	// ErrUndefinedReference is returned when a $name is missing from the
	// store or its type or value is malformed.
	ErrUndefinedReference = errors.New("undefined reference")

	// ErrInvalidRequest is returned for contradictory or out-of-range directives.
	ErrInvalidRequest = errors.New("invalid generation request")
)

// Errors raised by the lower layers, re-exported for callers of Generate.
var (
	ErrUnterminatedGroup        = expr.ErrUnterminatedGroup
	ErrUnterminatedLiteral      = expr.ErrUnterminatedLiteral
	ErrUnknownMode              = generator.ErrUnknownMode
	ErrMissingCharset           = generator.ErrMissingCharset
	ErrEmptyCharset             = charset.ErrEmptyCharset
	ErrLengthExceedsCardinality = charset.ErrLengthExceedsCardinality
)
