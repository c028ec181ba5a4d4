// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing tagged structs. Each configuration
// type is parsed once and cached for the life of the process.
//
// # Usage
//
//	type Config struct {
//	    StoreDriver string `env:"RGET_STORE_DRIVER" envDefault:"file"`
//	    StorePath   string `env:"RGET_STORE_PATH" envDefault:"rget.yaml"`
//	    LogLevel    string `env:"RGET_LOG_LEVEL" envDefault:"warn"`
//	}
//
//	if err := config.LoadEnv(); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// LoadEnv accepts explicit paths; later files override earlier ones and real
// environment variables always win.
//
// # Error Handling
//
//   - ErrParsingConfig: env.Parse failed, joined with the parser's error.
//   - ErrLoadingEnvFile: a named .env file could not be read.
//   - ErrConfigNotLoaded: the cache lost a freshly parsed value.
//   - ErrNilPointer: nil passed to Load or MustLoad.
//
// A failed parse is not cached, so fixing the environment and calling Load
// again works. Tests can call ResetCache or ForceReloadConfig after changing
// the environment.
package config
