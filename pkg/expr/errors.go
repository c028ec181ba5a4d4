package expr

import "errors"

var (
	// ErrUnterminatedGroup is returned for a mode invocation without a closing ")".
	ErrUnterminatedGroup = errors.New("missing closing parenthesis")

	// ErrUnterminatedLiteral is returned for a quoted literal without its closing quote.
	ErrUnterminatedLiteral = errors.New("missing closing quote")

	// ErrNoGenerator is returned when an Env has no Generator.
	ErrNoGenerator = errors.New("evaluation requires a generator")
)
