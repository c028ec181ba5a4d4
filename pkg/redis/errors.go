package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned when RGET_REDIS_URL is blank.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")

	// ErrInvalidConnectionURL wraps redis.ParseURL failures.
	ErrInvalidConnectionURL = errors.New("invalid redis connection URL")

	// ErrRedisNotReady is returned when no ping succeeded before the retries or the timeout ran out.
	ErrRedisNotReady = errors.New("redis did not answer ping")
)
