// Package logger builds the structured loggers used across rget.
//
// It is a thin functional-options wrapper around log/slog: New returns a
// *slog.Logger writing text or JSON records at a chosen level. Helper
// constructors in attr.go keep attribute keys consistent (mode, count,
// strategy, reference, path, ...).
//
// # Usage
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	if err != nil {
//	    return err
//	}
//
//	log := logger.New(
//	    logger.WithLevel(level),
//	    logger.WithFormat(logger.Format(cfg.LogFormat)),
//	    logger.WithAttr(logger.Component("rget")),
//	)
//	log.Debug("generated batch", logger.Mode("[n(4)]"), logger.Count(10))
//
// Records go to stderr by default so that generated strings on stdout stay
// machine-readable. Generated values themselves are never logged.
//
// # Configuration
//
//   - WithLevel – minimum level (default warn).
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format (default text).
//   - WithOutput – destination writer.
//   - WithAttr – static attributes.
//
// Error returns an empty attribute for nil errors, so callers can write
// log.Warn("export done", logger.Error(err)) without a nil check.
package logger
