package redis

import "time"

// Config describes the connection used by the redis-backed definition store.
type Config struct {
	ConnectionURL  string        `env:"RGET_REDIS_URL" envDefault:"redis://localhost:6379/0"` // redis://:password@host:6379/0
	KeyPrefix      string        `env:"RGET_REDIS_PREFIX" envDefault:"rget:"`                 // prepended to every key the store touches
	RetryAttempts  int           `env:"RGET_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"RGET_REDIS_RETRY_INTERVAL" envDefault:"1s"`
	ConnectTimeout time.Duration `env:"RGET_REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}
