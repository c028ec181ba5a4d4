package main

import (
	"fmt"

	"github.com/dmitrymomot/rget/pkg/export"
	"github.com/dmitrymomot/rget/pkg/redis"
)

// Store drivers accepted in RGET_STORE_DRIVER.
const (
	driverFile   = "file"
	driverRedis  = "redis"
	driverMemory = "memory"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	StoreDriver   string `env:"RGET_STORE_DRIVER" envDefault:"file"`
	StorePath     string `env:"RGET_STORE_PATH" envDefault:"rget.yaml"`
	LogLevel      string `env:"RGET_LOG_LEVEL" envDefault:"warn"`
	LogFormat     string `env:"RGET_LOG_FORMAT" envDefault:"text"`
	ExprCacheSize int    `env:"RGET_EXPR_CACHE_SIZE" envDefault:"64"`

	Redis redis.Config
	S3    export.S3Config `envPrefix:"RGET_S3_"`
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case driverFile, driverRedis, driverMemory:
	default:
		return fmt.Errorf("unknown store driver %q: use %s, %s or %s", c.StoreDriver, driverFile, driverRedis, driverMemory)
	}
	if c.StoreDriver == driverFile && c.StorePath == "" {
		return fmt.Errorf("RGET_STORE_PATH is required for the %s driver", driverFile)
	}
	return nil
}
