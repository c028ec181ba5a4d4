package export

import "errors"

var (
	ErrInvalidTarget = errors.New("invalid export target")
	ErrInvalidConfig = errors.New("invalid configuration")

	// File system errors
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToWriteFile       = errors.New("failed to write file")
	ErrFailedToOpenFile        = errors.New("failed to open file")
	ErrFailedToHash            = errors.New("failed to compute digest")

	// S3 errors
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
