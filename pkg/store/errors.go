package store

import "errors"

var (
	ErrInvalidKind          = errors.New("definition type must be re or cc")
	ErrInvalidName          = errors.New("invalid definition name")
	ErrReservedName         = errors.New("name is reserved")
	ErrDefinitionExists     = errors.New("definition already exists")
	ErrDefinitionNotFound   = errors.New("definition not found")
	ErrUnknownSetting       = errors.New("unknown setting, use min_length or max_length")
	ErrInvalidAssignment    = errors.New("invalid setting assignment")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrDivisionByZero       = errors.New("cannot divide by zero")

	ErrFailedToLoad  = errors.New("failed to load store file")
	ErrFailedToWrite = errors.New("failed to write store file")
)
